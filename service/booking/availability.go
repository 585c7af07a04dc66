package booking

import (
	"context"

	"ubwiza_rentals/constants"
	"ubwiza_rentals/database"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"
)

// DateRange is a half-open stay [CheckIn, CheckOut): the check-out day is free for the next guest.
type DateRange struct {
	CheckIn  utils.CustomDate
	CheckOut utils.CustomDate
}

func (r DateRange) Valid() bool {
	return r.CheckIn.Before(r.CheckOut)
}

// Overlaps reports whether two stays share at least one night.
func Overlaps(a, b DateRange) bool {
	return a.CheckIn.Before(b.CheckOut) && a.CheckOut.After(b.CheckIn)
}

type Availability struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// Checker answers whether a room is free. Only confirmed bookings block a stay.
type Checker struct {
	Rooms    database.RoomRepository
	Bookings database.BookingRepository
}

func NewChecker(rooms database.RoomRepository, bookings database.BookingRepository) *Checker {
	return &Checker{Rooms: rooms, Bookings: bookings}
}

func (c *Checker) IsAvailable(ctx context.Context, roomID uint, checkIn, checkOut utils.CustomDate) (Availability, error) {
	stay := DateRange{CheckIn: checkIn, CheckOut: checkOut}
	if !stay.Valid() {
		return Availability{}, utils.NewValidationError("check_out", "Check-out date must be after check-in date.")
	}
	if _, err := c.Rooms.GetByID(ctx, roomID); err != nil {
		return Availability{}, err
	}

	conflicts, err := c.Bookings.FindOverlapping(ctx, database.OverlapQuery{
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		ConfirmedOnly: true,
		Limit:         1,
	})
	if err != nil {
		return Availability{}, err
	}
	if len(conflicts) > 0 {
		return Availability{Available: false, Message: constants.ROOM_NOT_AVAILABLE}, nil
	}
	return Availability{Available: true, Message: constants.ROOM_AVAILABLE}, nil
}

// Conflicts lists the confirmed bookings that overlap the given booking, excluding itself.
func (c *Checker) Conflicts(ctx context.Context, bookingID uint) ([]model.Booking, error) {
	b, err := c.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return c.Bookings.FindOverlapping(ctx, database.OverlapQuery{
		RoomID:        b.RoomID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		ConfirmedOnly: true,
		ExcludeID:     b.ID,
	})
}
