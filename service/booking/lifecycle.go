package booking

import (
	"context"
	"fmt"

	"ubwiza_rentals/config"
	"ubwiza_rentals/database"
	"ubwiza_rentals/model"
	"ubwiza_rentals/service/notification"
	"ubwiza_rentals/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit stores a pending booking request. It does not check availability:
// overlapping requests are accepted and reconciled by staff on confirmation.
func (s *DefaultBookingService) Submit(ctx context.Context, input model.BookingInput) (*SubmitResult, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	if input.CheckIn.IsZero() {
		return nil, utils.NewValidationError("check_in", "This field is required.")
	}
	if input.CheckOut.IsZero() {
		return nil, utils.NewValidationError("check_out", "This field is required.")
	}

	today := utils.DateOf(s.Now().In(config.Location()))
	if input.CheckIn.Before(today) {
		return nil, utils.NewValidationError("check_in", "Check-in date cannot be in the past.")
	}
	if !input.CheckOut.After(input.CheckIn) {
		return nil, utils.NewValidationError("check_out", "Check-out date must be after check-in date.")
	}

	room, err := s.Rooms.GetByID(ctx, input.RoomID)
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, utils.NewValidationError("room", "Select a valid choice. That room is not available.")
		}
		return nil, err
	}
	if capacity := room.RoomType.Capacity(); input.Guests > capacity {
		return nil, utils.NewValidationError("guests",
			fmt.Sprintf("This %s room can accommodate maximum %d guests.", room.RoomType, capacity))
	}

	booking := &model.Booking{
		Reference: uuid.NewString(),
		RoomID:    room.ID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		Guests:    input.Guests,
		Confirmed: false,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	booking.Room = room

	nights := input.CheckIn.DaysUntil(input.CheckOut)
	months, cost := EstimateCost(room.Price, nights)

	if s.Notifier != nil {
		s.Notifier.Notify(booking.Email, requestSubject(room), requestBody(booking, room, cost))
	}
	if s.Publisher != nil {
		event := notification.Event{
			Type:      "created",
			BookingID: booking.ID,
			Reference: booking.Reference,
			RoomID:    booking.RoomID,
			Name:      booking.Name,
			CheckIn:   booking.CheckIn.String(),
			CheckOut:  booking.CheckOut.String(),
		}
		if err := s.Publisher.Publish(ctx, event); err != nil {
			utils.GetLogger().Warn("failed to publish booking event", zap.Uint("bookingId", booking.ID), zap.Error(err))
		}
	}

	return &SubmitResult{
		Booking:       booking,
		Nights:        nights,
		Months:        months,
		EstimatedCost: cost,
	}, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id uint) (*model.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

// GetByReference looks a booking up by the public reference given to the guest.
func (s *DefaultBookingService) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	return s.Bookings.GetByReference(ctx, reference)
}

func (s *DefaultBookingService) Confirm(ctx context.Context, id uint) (*model.Booking, error) {
	return s.Bookings.SetConfirmed(ctx, id, true)
}

// Unconfirm returns a booking to pending. Cancelling uses the same state.
func (s *DefaultBookingService) Unconfirm(ctx context.Context, id uint) (*model.Booking, error) {
	return s.Bookings.SetConfirmed(ctx, id, false)
}

func (s *DefaultBookingService) ConfirmMany(ctx context.Context, ids []uint) (int64, error) {
	return s.Bookings.SetConfirmedMany(ctx, ids, true)
}

func (s *DefaultBookingService) UnconfirmMany(ctx context.Context, ids []uint) (int64, error) {
	return s.Bookings.SetConfirmedMany(ctx, ids, false)
}

func (s *DefaultBookingService) Delete(ctx context.Context, id uint) error {
	return s.Bookings.Delete(ctx, id)
}

func (s *DefaultBookingService) List(ctx context.Context, filter model.BookingFilter) ([]model.Booking, int64, error) {
	query := database.BookingQuery{
		Confirmed: filter.Confirmed,
		RoomID:    filter.RoomID,
		Search:    filter.Search,
	}
	if filter.From != "" {
		from, err := utils.ParseDate(filter.From)
		if err != nil {
			return nil, 0, utils.NewValidationError("from", err.Error())
		}
		query.CheckInFrom = &from
	}
	if filter.To != "" {
		to, err := utils.ParseDate(filter.To)
		if err != nil {
			return nil, 0, utils.NewValidationError("to", err.Error())
		}
		query.CheckInTo = &to
	}

	total, err := s.Bookings.Count(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	if filter.Limit != nil && *filter.Limit > 0 && filter.Page != nil && *filter.Page >= 1 {
		query.Limit = *filter.Limit
		query.Offset = *filter.Limit * (*filter.Page - 1)
	}
	bookings, err := s.Bookings.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}
