package database

import (
	"context"
	"fmt"

	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"gorm.io/gorm"
)

type gormBookingRepo struct {
	db *gorm.DB
}

func NewGormBookingRepo(db *gorm.DB) BookingRepository {
	return &gormBookingRepo{db: db}
}

func (r *gormBookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *gormBookingRepo) GetByID(ctx context.Context, id uint) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).Preload("Room").First(&booking, id).Error; err != nil {
		return nil, notFound(err, "booking", id)
	}
	return &booking, nil
}

func (r *gormBookingRepo) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).Preload("Room").Where("reference = ?", reference).First(&booking).Error; err != nil {
		return nil, notFound(err, "booking", reference)
	}
	return &booking, nil
}

func (r *gormBookingRepo) SetConfirmed(ctx context.Context, id uint, confirmed bool) (*model.Booking, error) {
	res := r.db.WithContext(ctx).Model(&model.Booking{}).Where("id = ?", id).Update("confirmed", confirmed)
	if res.Error != nil {
		return nil, res.Error
	}
	// An idempotent update of an existing row still matches it, so zero rows means a miss.
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("booking %d: %w", id, utils.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

func (r *gormBookingRepo) SetConfirmedMany(ctx context.Context, ids []uint, confirmed bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&model.Booking{}).Where("id IN ?", ids).Update("confirmed", confirmed)
	return res.RowsAffected, res.Error
}

func (r *gormBookingRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking %d: %w", id, utils.ErrNotFound)
	}
	return nil
}

func (r *gormBookingRepo) filter(ctx context.Context, q BookingQuery) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Booking{})
	if q.Confirmed != nil {
		query = query.Where("confirmed = ?", *q.Confirmed)
	}
	if q.RoomID != nil {
		query = query.Where("room_id = ?", *q.RoomID)
	}
	if q.CheckInFrom != nil {
		query = query.Where("check_in >= ?", *q.CheckInFrom)
	}
	if q.CheckInTo != nil {
		query = query.Where("check_in <= ?", *q.CheckInTo)
	}
	if q.CreatedSince != nil {
		query = query.Where("created_at >= ?", *q.CreatedSince)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}
	return query
}

func (r *gormBookingRepo) List(ctx context.Context, q BookingQuery) ([]model.Booking, error) {
	query := r.filter(ctx, q).Preload("Room")
	if q.Limit > 0 {
		query = query.Limit(q.Limit).Offset(q.Offset)
	}

	var bookings []model.Booking
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *gormBookingRepo) Count(ctx context.Context, q BookingQuery) (int64, error) {
	var count int64
	err := r.filter(ctx, q).Count(&count).Error
	return count, err
}

func (r *gormBookingRepo) FindOverlapping(ctx context.Context, q OverlapQuery) ([]model.Booking, error) {
	query := r.db.WithContext(ctx).
		Where("room_id = ?", q.RoomID).
		Where("check_in < ? AND check_out > ?", q.CheckOut, q.CheckIn)
	if q.ConfirmedOnly {
		query = query.Where("confirmed = ?", true)
	}
	if q.ExcludeID != 0 {
		query = query.Where("id <> ?", q.ExcludeID)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var bookings []model.Booking
	if err := query.Order("check_in ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
