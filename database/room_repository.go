package database

import (
	"context"
	"fmt"

	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"gorm.io/gorm"
)

type gormRoomRepo struct {
	db *gorm.DB
}

func NewGormRoomRepo(db *gorm.DB) RoomRepository {
	return &gormRoomRepo{db: db}
}

func (r *gormRoomRepo) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *gormRoomRepo) Update(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *gormRoomRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&model.Booking{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Room{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("room %d: %w", id, utils.ErrNotFound)
		}
		return nil
	})
}

func (r *gormRoomRepo) GetByID(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, notFound(err, "room", id)
	}
	return &room, nil
}

func (r *gormRoomRepo) List(ctx context.Context, q RoomQuery) ([]model.Room, error) {
	query := r.db.WithContext(ctx).Model(&model.Room{})
	if q.Type != "" {
		query = query.Where("room_type = ?", q.Type)
	}
	if q.MinPrice != nil {
		if q.MinPrice.Inclusive {
			query = query.Where("price >= ?", q.MinPrice.Value)
		} else {
			query = query.Where("price > ?", q.MinPrice.Value)
		}
	}
	if q.MaxPrice != nil {
		if q.MaxPrice.Inclusive {
			query = query.Where("price <= ?", q.MaxPrice.Value)
		} else {
			query = query.Where("price < ?", q.MaxPrice.Value)
		}
	}
	if q.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if q.ExcludeID != 0 {
		query = query.Where("id <> ?", q.ExcludeID)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var rooms []model.Room
	if err := query.Order("is_featured DESC").Order("price ASC").Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *gormRoomRepo) Count(ctx context.Context, featuredOnly bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Room{})
	if featuredOnly {
		query = query.Where("is_featured = ?", true)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *gormRoomRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
