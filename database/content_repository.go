package database

import (
	"context"
	"fmt"

	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"gorm.io/gorm"
)

type gormContactRepo struct {
	db *gorm.DB
}

func NewGormContactRepo(db *gorm.DB) ContactRepository {
	return &gormContactRepo{db: db}
}

func (r *gormContactRepo) Create(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *gormContactRepo) List(ctx context.Context, limit, offset int) ([]model.ContactMessage, error) {
	query := r.db.WithContext(ctx).Order("sent_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	var messages []model.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *gormContactRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ContactMessage{}).Count(&count).Error
	return count, err
}

type gormGalleryRepo struct {
	db *gorm.DB
}

func NewGormGalleryRepo(db *gorm.DB) GalleryRepository {
	return &gormGalleryRepo{db: db}
}

func (r *gormGalleryRepo) Create(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *gormGalleryRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.GalleryImage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("gallery image %d: %w", id, utils.ErrNotFound)
	}
	return nil
}

func (r *gormGalleryRepo) List(ctx context.Context, limit int) ([]model.GalleryImage, error) {
	query := r.db.WithContext(ctx).Order("uploaded_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var images []model.GalleryImage
	if err := query.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

type gormApartmentRepo struct {
	db *gorm.DB
}

func NewGormApartmentRepo(db *gorm.DB) ApartmentRepository {
	return &gormApartmentRepo{db: db}
}

func (r *gormApartmentRepo) Create(ctx context.Context, apartment *model.Apartment) error {
	return r.db.WithContext(ctx).Create(apartment).Error
}

func (r *gormApartmentRepo) Update(ctx context.Context, apartment *model.Apartment) error {
	return r.db.WithContext(ctx).Save(apartment).Error
}

func (r *gormApartmentRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Apartment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("apartment %d: %w", id, utils.ErrNotFound)
	}
	return nil
}

func (r *gormApartmentRepo) GetByID(ctx context.Context, id uint) (*model.Apartment, error) {
	var apartment model.Apartment
	if err := r.db.WithContext(ctx).First(&apartment, id).Error; err != nil {
		return nil, notFound(err, "apartment", id)
	}
	return &apartment, nil
}

func (r *gormApartmentRepo) List(ctx context.Context) ([]model.Apartment, error) {
	var apartments []model.Apartment
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&apartments).Error; err != nil {
		return nil, err
	}
	return apartments, nil
}

type gormAccountRepo struct {
	db *gorm.DB
}

func NewGormAccountRepo(db *gorm.DB) AccountRepository {
	return &gormAccountRepo{db: db}
}

func (r *gormAccountRepo) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where(&model.Account{Username: username}).First(&account).Error; err != nil {
		return nil, notFound(err, "account", username)
	}
	return &account, nil
}

func (r *gormAccountRepo) GetByID(ctx context.Context, id uint) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, notFound(err, "account", id)
	}
	return &account, nil
}
