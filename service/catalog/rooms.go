package catalog

import (
	"context"

	"ubwiza_rentals/config"
	"ubwiza_rentals/database"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"
)

// roomQuery maps the public listing filter onto a store query. An unknown
// type still filters (and matches nothing); an unknown price tier is ignored.
func roomQuery(filter model.RoomFilter) database.RoomQuery {
	q := database.RoomQuery{Type: filter.Type}
	switch model.PriceTier(filter.Price) {
	case model.PriceBudget:
		q.MaxPrice = &database.PriceBound{Value: model.BudgetCeiling}
	case model.PriceMedium:
		q.MinPrice = &database.PriceBound{Value: model.BudgetCeiling, Inclusive: true}
		q.MaxPrice = &database.PriceBound{Value: model.PremiumFloor, Inclusive: true}
	case model.PricePremium:
		q.MinPrice = &database.PriceBound{Value: model.PremiumFloor}
	}
	return q
}

func (s *DefaultCatalogService) listRooms(ctx context.Context, q database.RoomQuery) ([]model.Room, error) {
	if rooms, ok := s.Cache.Get(ctx, q); ok {
		return rooms, nil
	}
	rooms, err := s.Rooms.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []model.Room{}
	}
	s.Cache.Set(ctx, q, rooms)
	return rooms, nil
}

func (s *DefaultCatalogService) ListRooms(ctx context.Context, filter model.RoomFilter) ([]model.Room, error) {
	return s.listRooms(ctx, roomQuery(filter))
}

func (s *DefaultCatalogService) ListFeatured(ctx context.Context, limit int) ([]model.Room, error) {
	return s.listRooms(ctx, database.RoomQuery{FeaturedOnly: true, Limit: limit})
}

func (s *DefaultCatalogService) ListSimilarRooms(ctx context.Context, room *model.Room, limit int) ([]model.Room, error) {
	return s.listRooms(ctx, database.RoomQuery{
		Type:      string(room.RoomType),
		ExcludeID: room.ID,
		Limit:     limit,
	})
}

func (s *DefaultCatalogService) GetRoom(ctx context.Context, id uint) (*model.Room, error) {
	return s.Rooms.GetByID(ctx, id)
}

func (s *DefaultCatalogService) RoomDetail(ctx context.Context, id uint) (*RoomDetail, error) {
	room, err := s.Rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	similar, err := s.ListSimilarRooms(ctx, room, SimilarRooms)
	if err != nil {
		return nil, err
	}
	return &RoomDetail{Room: room, SimilarRooms: similar}, nil
}

func (s *DefaultCatalogService) ListGallery(ctx context.Context, limit int) ([]model.GalleryImage, error) {
	images, err := s.Gallery.List(ctx, limit)
	if images == nil && err == nil {
		images = []model.GalleryImage{}
	}
	return images, err
}

func (s *DefaultCatalogService) ListApartments(ctx context.Context) ([]model.Apartment, error) {
	apartments, err := s.Apartments.List(ctx)
	if apartments == nil && err == nil {
		apartments = []model.Apartment{}
	}
	return apartments, err
}

func (s *DefaultCatalogService) today() utils.CustomDate {
	return utils.DateOf(s.Now().In(config.Location()))
}

func (s *DefaultCatalogService) Home(ctx context.Context) (*HomePage, error) {
	featured, err := s.ListFeatured(ctx, HomeFeaturedRooms)
	if err != nil {
		return nil, err
	}
	images, err := s.ListGallery(ctx, HomeGalleryImages)
	if err != nil {
		return nil, err
	}
	apartments, err := s.ListApartments(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.Rooms.Count(ctx, false)
	if err != nil {
		return nil, err
	}
	featuredCount, err := s.Rooms.Count(ctx, true)
	if err != nil {
		return nil, err
	}

	today := s.today()
	return &HomePage{
		FeaturedRooms: featured,
		GalleryImages: images,
		Apartments:    apartments,
		TotalRooms:    total,
		FeaturedCount: featuredCount,
		Today:         today.String(),
		Tomorrow:      today.AddDays(1).String(),
	}, nil
}

func (s *DefaultCatalogService) About(ctx context.Context) (*AboutPage, error) {
	images, err := s.ListGallery(ctx, AboutGallery)
	if err != nil {
		return nil, err
	}
	total, err := s.Rooms.Count(ctx, false)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.Bookings.Count(ctx, database.BookingQuery{Confirmed: utils.Ptr(true)})
	if err != nil {
		return nil, err
	}
	return &AboutPage{GalleryImages: images, TotalRooms: total, TotalBookings: confirmed}, nil
}

// BookingForm lists every room for the form. A preselected room that does not exist is dropped.
func (s *DefaultCatalogService) BookingForm(ctx context.Context, preselect *uint) (*BookingFormPage, error) {
	rooms, err := s.listRooms(ctx, database.RoomQuery{})
	if err != nil {
		return nil, err
	}
	var selected *uint
	if preselect != nil {
		for _, room := range rooms {
			if room.ID == *preselect {
				selected = preselect
				break
			}
		}
	}

	today := s.today()
	return &BookingFormPage{
		Rooms:     rooms,
		RoomTypes: model.RoomTypeOptions(),
		Selected:  selected,
		Today:     today.String(),
		Tomorrow:  today.AddDays(1).String(),
	}, nil
}
