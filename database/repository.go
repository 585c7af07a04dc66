package database

import (
	"context"
	"time"

	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"
)

// PriceBound is one end of a price range.
type PriceBound struct {
	Value     float64
	Inclusive bool
}

// RoomQuery selects rooms. Results are ordered featured first, then by ascending price.
type RoomQuery struct {
	Type         string
	MinPrice     *PriceBound
	MaxPrice     *PriceBound
	FeaturedOnly bool
	ExcludeID    uint
	Limit        int
}

type BookingQuery struct {
	Confirmed    *bool
	RoomID       *uint
	CheckInFrom  *utils.CustomDate
	CheckInTo    *utils.CustomDate
	CreatedSince *time.Time
	Search       string
	Limit        int
	Offset       int
}

// OverlapQuery finds bookings of one room whose stay intersects [CheckIn, CheckOut).
type OverlapQuery struct {
	RoomID        uint
	CheckIn       utils.CustomDate
	CheckOut      utils.CustomDate
	ConfirmedOnly bool
	ExcludeID     uint
	Limit         int
}

type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	Update(ctx context.Context, room *model.Room) error
	// Delete removes the room together with all of its bookings.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*model.Room, error)
	List(ctx context.Context, q RoomQuery) ([]model.Room, error)
	Count(ctx context.Context, featuredOnly bool) (int64, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id uint) (*model.Booking, error)
	GetByReference(ctx context.Context, reference string) (*model.Booking, error)
	SetConfirmed(ctx context.Context, id uint, confirmed bool) (*model.Booking, error)
	SetConfirmedMany(ctx context.Context, ids []uint, confirmed bool) (int64, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q BookingQuery) ([]model.Booking, error)
	Count(ctx context.Context, q BookingQuery) (int64, error)
	FindOverlapping(ctx context.Context, q OverlapQuery) ([]model.Booking, error)
}

type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, limit, offset int) ([]model.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}

type GalleryRepository interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit int) ([]model.GalleryImage, error)
}

type ApartmentRepository interface {
	Create(ctx context.Context, apartment *model.Apartment) error
	Update(ctx context.Context, apartment *model.Apartment) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*model.Apartment, error)
	List(ctx context.Context) ([]model.Apartment, error)
}

type AccountRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	GetByID(ctx context.Context, id uint) (*model.Account, error)
}

// Repositories bundles every store the services need.
type Repositories struct {
	Rooms      RoomRepository
	Bookings   BookingRepository
	Messages   ContactRepository
	Gallery    GalleryRepository
	Apartments ApartmentRepository
	Accounts   AccountRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		Rooms:      NewGormRoomRepo(DB),
		Bookings:   NewGormBookingRepo(DB),
		Messages:   NewGormContactRepo(DB),
		Gallery:    NewGormGalleryRepo(DB),
		Apartments: NewGormApartmentRepo(DB),
		Accounts:   NewGormAccountRepo(DB),
	}
}
