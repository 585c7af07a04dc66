package catalog

import (
	"context"

	"ubwiza_rentals/helper"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"github.com/jinzhu/copier"
)

func (s *DefaultCatalogService) CreateRoom(ctx context.Context, input model.CreateRoomInput) (*model.Room, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	var room model.Room
	if err := copier.Copy(&room, &input); err != nil {
		return nil, err
	}
	slug, err := helper.GenerateUniqueSlug(ctx, input.Title, s.Rooms.SlugExists)
	if err != nil {
		return nil, err
	}
	room.Slug = slug

	if err := s.Rooms.Create(ctx, &room); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx)
	return &room, nil
}

// UpdateRoom applies only the fields present in input. A new title regenerates the slug.
func (s *DefaultCatalogService) UpdateRoom(ctx context.Context, id uint, input model.UpdateRoomInput) (*model.Room, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	room, err := s.Rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldTitle := room.Title
	if err := copier.CopyWithOption(room, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if room.Title != oldTitle {
		slug, err := helper.GenerateUniqueSlug(ctx, room.Title, s.Rooms.SlugExists)
		if err != nil {
			return nil, err
		}
		room.Slug = slug
	}

	if err := s.Rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx)
	return room, nil
}

// DeleteRoom also removes every booking of the room.
func (s *DefaultCatalogService) DeleteRoom(ctx context.Context, id uint) error {
	if err := s.Rooms.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}

func (s *DefaultCatalogService) AddGalleryImage(ctx context.Context, input model.CreateGalleryImageInput) (*model.GalleryImage, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	image := model.GalleryImage{Title: input.Title, Image: input.Image}
	if err := s.Gallery.Create(ctx, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (s *DefaultCatalogService) DeleteGalleryImage(ctx context.Context, id uint) error {
	return s.Gallery.Delete(ctx, id)
}

func (s *DefaultCatalogService) CreateApartment(ctx context.Context, input model.ApartmentInput) (*model.Apartment, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	var apartment model.Apartment
	if err := copier.Copy(&apartment, &input); err != nil {
		return nil, err
	}
	if err := s.Apartments.Create(ctx, &apartment); err != nil {
		return nil, err
	}
	return &apartment, nil
}

func (s *DefaultCatalogService) UpdateApartment(ctx context.Context, id uint, input model.ApartmentInput) (*model.Apartment, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	apartment, err := s.Apartments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apartment.Name = input.Name
	apartment.Description = input.Description
	apartment.Photo = input.Photo
	apartment.VideoURL = input.VideoURL
	if err := s.Apartments.Update(ctx, apartment); err != nil {
		return nil, err
	}
	return apartment, nil
}

func (s *DefaultCatalogService) DeleteApartment(ctx context.Context, id uint) error {
	return s.Apartments.Delete(ctx, id)
}
