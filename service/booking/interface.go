package booking

import (
	"context"
	"time"

	"ubwiza_rentals/database"
	"ubwiza_rentals/model"
	"ubwiza_rentals/service/notification"
	"ubwiza_rentals/utils"
)

// BookingService covers the guest submission and the staff lifecycle actions.
type BookingService interface {
	Submit(ctx context.Context, input model.BookingInput) (*SubmitResult, error)
	Get(ctx context.Context, id uint) (*model.Booking, error)
	GetByReference(ctx context.Context, reference string) (*model.Booking, error)
	Confirm(ctx context.Context, id uint) (*model.Booking, error)
	Unconfirm(ctx context.Context, id uint) (*model.Booking, error)
	ConfirmMany(ctx context.Context, ids []uint) (int64, error)
	UnconfirmMany(ctx context.Context, ids []uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter model.BookingFilter) ([]model.Booking, int64, error)
}

// AvailabilityChecker is implemented by *Checker.
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context, roomID uint, checkIn, checkOut utils.CustomDate) (Availability, error)
	Conflicts(ctx context.Context, bookingID uint) ([]model.Booking, error)
}

// Notifier is the fire-and-forget mail sender.
type Notifier interface {
	Notify(to, subject, body string)
}

// Publisher pushes booking events to the staff live feed.
type Publisher interface {
	Publish(ctx context.Context, event notification.Event) error
}

type DefaultBookingService struct {
	Rooms     database.RoomRepository
	Bookings  database.BookingRepository
	Notifier  Notifier
	Publisher Publisher
	// Now is the clock used for the "no past check-in" rule.
	Now func() time.Time
}

func NewBookingService(rooms database.RoomRepository, bookings database.BookingRepository, notifier Notifier, publisher Publisher) *DefaultBookingService {
	return &DefaultBookingService{
		Rooms:     rooms,
		Bookings:  bookings,
		Notifier:  notifier,
		Publisher: publisher,
		Now:       time.Now,
	}
}

// SubmitResult is a stored booking plus the price estimate shown to the guest.
type SubmitResult struct {
	Booking       *model.Booking `json:"booking"`
	Nights        int            `json:"nights"`
	Months        int            `json:"months"`
	EstimatedCost float64        `json:"estimatedCost"`
}
