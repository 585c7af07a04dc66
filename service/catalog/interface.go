package catalog

import (
	"context"
	"time"

	"ubwiza_rentals/database"
	"ubwiza_rentals/model"
)

// Page sizes used by the public pages.
const (
	HomeFeaturedRooms = 6
	HomeGalleryImages = 8
	AboutGallery      = 8
	SimilarRooms      = 3
)

type CatalogService interface {
	ListRooms(ctx context.Context, filter model.RoomFilter) ([]model.Room, error)
	ListFeatured(ctx context.Context, limit int) ([]model.Room, error)
	ListGallery(ctx context.Context, limit int) ([]model.GalleryImage, error)
	ListSimilarRooms(ctx context.Context, room *model.Room, limit int) ([]model.Room, error)
	GetRoom(ctx context.Context, id uint) (*model.Room, error)
	RoomDetail(ctx context.Context, id uint) (*RoomDetail, error)
	ListApartments(ctx context.Context) ([]model.Apartment, error)
	Home(ctx context.Context) (*HomePage, error)
	About(ctx context.Context) (*AboutPage, error)
	BookingForm(ctx context.Context, preselect *uint) (*BookingFormPage, error)

	CreateRoom(ctx context.Context, input model.CreateRoomInput) (*model.Room, error)
	UpdateRoom(ctx context.Context, id uint, input model.UpdateRoomInput) (*model.Room, error)
	DeleteRoom(ctx context.Context, id uint) error
	AddGalleryImage(ctx context.Context, input model.CreateGalleryImageInput) (*model.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id uint) error
	CreateApartment(ctx context.Context, input model.ApartmentInput) (*model.Apartment, error)
	UpdateApartment(ctx context.Context, id uint, input model.ApartmentInput) (*model.Apartment, error)
	DeleteApartment(ctx context.Context, id uint) error
}

type DefaultCatalogService struct {
	Rooms      database.RoomRepository
	Gallery    database.GalleryRepository
	Apartments database.ApartmentRepository
	Bookings   database.BookingRepository
	// Cache may be nil.
	Cache *RoomCache
	Now   func() time.Time
}

func NewCatalogService(repos *database.Repositories, cache *RoomCache) *DefaultCatalogService {
	return &DefaultCatalogService{
		Rooms:      repos.Rooms,
		Gallery:    repos.Gallery,
		Apartments: repos.Apartments,
		Bookings:   repos.Bookings,
		Cache:      cache,
		Now:        time.Now,
	}
}

type RoomDetail struct {
	Room         *model.Room  `json:"room"`
	SimilarRooms []model.Room `json:"similarRooms"`
}

type HomePage struct {
	FeaturedRooms []model.Room         `json:"featuredRooms"`
	GalleryImages []model.GalleryImage `json:"galleryImages"`
	Apartments    []model.Apartment    `json:"apartments"`
	TotalRooms    int64                `json:"totalRooms"`
	FeaturedCount int64                `json:"featuredCount"`
	Today         string               `json:"today"`
	Tomorrow      string               `json:"tomorrow"`
}

type AboutPage struct {
	GalleryImages []model.GalleryImage `json:"galleryImages"`
	TotalRooms    int64                `json:"totalRooms"`
	TotalBookings int64                `json:"totalBookings"`
}

type BookingFormPage struct {
	Rooms     []model.Room           `json:"rooms"`
	RoomTypes []model.RoomTypeOption `json:"roomTypes"`
	Selected  *uint                  `json:"selectedRoom"`
	Today     string                 `json:"today"`
	Tomorrow  string                 `json:"tomorrow"`
}
