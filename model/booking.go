package model

import (
	"strconv"
	"strings"

	"ubwiza_rentals/utils"
)

// Booking is a guest's request for a room. It stays pending (Confirmed=false)
// until staff confirm it; reverting a confirmation returns it to pending.
type Booking struct {
	DTO
	Reference string           `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	RoomID    uint             `gorm:"not null;index" json:"roomId"`
	Room      *Room            `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"room,omitempty"`
	Name      string           `gorm:"size:100;not null" json:"name"`
	Email     string           `gorm:"size:254;not null;index" json:"email"`
	Phone     string           `gorm:"size:20;not null" json:"phone"`
	CheckIn   utils.CustomDate `gorm:"type:date;not null;index" json:"checkIn"`
	CheckOut  utils.CustomDate `gorm:"type:date;not null;index" json:"checkOut"`
	Guests    int              `gorm:"not null;default:1;check:guests > 0" json:"guests"`
	Confirmed bool             `gorm:"not null;default:false;index" json:"confirmed"`
}

func (b Booking) Status() string {
	if b.Confirmed {
		return "confirmed"
	}
	return "pending"
}

// FormNumber is a numeric form field kept as typed, so a bad value can be
// reported against its field. JSON numbers and strings are both accepted.
type FormNumber string

func (n *FormNumber) UnmarshalText(text []byte) error {
	*n = FormNumber(text)
	return nil
}

func (n *FormNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	*n = FormNumber(raw)
	return nil
}

// BookingRequest is the raw booking form as posted by the guest.
type BookingRequest struct {
	Room     FormNumber `json:"room" form:"room"`
	Name     string     `json:"name" form:"name"`
	Email    string     `json:"email" form:"email"`
	Phone    string     `json:"phone" form:"phone"`
	CheckIn  string     `json:"check_in" form:"check_in"`
	CheckOut string     `json:"check_out" form:"check_out"`
	Guests   FormNumber `json:"guests" form:"guests"`
}

// BookingInput is a booking form whose dates have been parsed.
type BookingInput struct {
	RoomID   uint             `json:"room" validate:"required"`
	Name     string           `json:"name" validate:"required,max=100"`
	Email    string           `json:"email" validate:"required,email,max=254"`
	Phone    string           `json:"phone" validate:"required,max=20,phone"`
	CheckIn  utils.CustomDate `json:"check_in"`
	CheckOut utils.CustomDate `json:"check_out"`
	Guests   int              `json:"guests" validate:"required,min=1,max=10"`
}

type BookingFilter struct {
	Pagination
	Confirmed *bool  `query:"confirmed" json:"confirmed"`
	RoomID    *uint  `query:"room" json:"room"`
	From      string `query:"from" json:"from"`
	To        string `query:"to" json:"to"`
	Search    string `query:"search" json:"search"`
}

type AvailabilityQuery struct {
	RoomID   string `query:"room_id"`
	CheckIn  string `query:"check_in"`
	CheckOut string `query:"check_out"`
}

// AvailabilityCheck is an AvailabilityQuery with its values parsed.
type AvailabilityCheck struct {
	RoomID   uint
	CheckIn  utils.CustomDate
	CheckOut utils.CustomDate
}
