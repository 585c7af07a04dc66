package model

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomSuite  RoomType = "suite"
)

var RoomTypes = []RoomType{RoomSingle, RoomDouble, RoomSuite}

var roomTypeLabels = map[RoomType]string{
	RoomSingle: "Single Room",
	RoomDouble: "Double Room",
	RoomSuite:  "Suite",
}

func (t RoomType) Valid() bool {
	_, ok := roomTypeLabels[t]
	return ok
}

func (t RoomType) Label() string {
	return roomTypeLabels[t]
}

// Capacity is the most guests a room of this type may be booked for.
func (t RoomType) Capacity() int {
	if t == RoomSingle {
		return 2
	}
	return 4
}

type PriceTier string

const (
	PriceBudget  PriceTier = "budget"
	PriceMedium  PriceTier = "medium"
	PricePremium PriceTier = "premium"
)

// Tier bounds in currency units. Medium includes both ends.
const (
	BudgetCeiling = 50000
	PremiumFloor  = 100000
)

type Room struct {
	DTO
	Title       string   `gorm:"size:100;not null" json:"title"`
	Slug        string   `gorm:"size:120;uniqueIndex" json:"slug"`
	RoomType    RoomType `gorm:"size:20;not null;index" json:"roomType"`
	Price       float64  `gorm:"type:decimal(10,2);not null;index" json:"price"`
	Description string   `gorm:"type:text" json:"description"`
	Image       string   `gorm:"size:500" json:"image"`
	IsFeatured  bool     `gorm:"not null;default:false;index" json:"isFeatured"`
}

type RoomTypeOption struct {
	Value RoomType `json:"value"`
	Label string   `json:"label"`
}

func RoomTypeOptions() []RoomTypeOption {
	options := make([]RoomTypeOption, 0, len(RoomTypes))
	for _, t := range RoomTypes {
		options = append(options, RoomTypeOption{Value: t, Label: t.Label()})
	}
	return options
}

type RoomFilter struct {
	Type  string `query:"type" json:"type"`
	Price string `query:"price" json:"price"`
}

type CreateRoomInput struct {
	Title       string   `json:"title" validate:"required,max=100"`
	RoomType    RoomType `json:"roomType" validate:"required,oneof=single double suite"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description string   `json:"description"`
	Image       string   `json:"image" validate:"required,url"`
	IsFeatured  bool     `json:"isFeatured"`
}

type UpdateRoomInput struct {
	Title       *string   `json:"title" validate:"omitempty,max=100"`
	RoomType    *RoomType `json:"roomType" validate:"omitempty,oneof=single double suite"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Description *string   `json:"description"`
	Image       *string   `json:"image" validate:"omitempty,url"`
	IsFeatured  *bool     `json:"isFeatured"`
}
