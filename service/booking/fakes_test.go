package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"ubwiza_rentals/database"
	"ubwiza_rentals/model"
	"ubwiza_rentals/service/notification"
	"ubwiza_rentals/utils"
)

type fakeRoomRepo struct {
	rooms map[uint]*model.Room
}

func newFakeRoomRepo(rooms ...model.Room) *fakeRoomRepo {
	r := &fakeRoomRepo{rooms: map[uint]*model.Room{}}
	for i := range rooms {
		room := rooms[i]
		r.rooms[room.ID] = &room
	}
	return r
}

func (r *fakeRoomRepo) Create(_ context.Context, room *model.Room) error {
	room.ID = uint(len(r.rooms) + 1)
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *model.Room) error {
	r.rooms[room.ID] = room
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id uint) error {
	delete(r.rooms, id)
	return nil
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id uint) (*model.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, fmt.Errorf("room %d: %w", id, utils.ErrNotFound)
	}
	copied := *room
	return &copied, nil
}

func (r *fakeRoomRepo) List(context.Context, database.RoomQuery) ([]model.Room, error) {
	return nil, errors.New("not used")
}

func (r *fakeRoomRepo) Count(context.Context, bool) (int64, error) {
	return int64(len(r.rooms)), nil
}

func (r *fakeRoomRepo) SlugExists(context.Context, string) (bool, error) {
	return false, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uint]*model.Booking
	nextID   uint
}

func newFakeBookingRepo(bookings ...model.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[uint]*model.Booking{}}
	for i := range bookings {
		b := bookings[i]
		r.bookings[b.ID] = &b
		if b.ID > r.nextID {
			r.nextID = b.ID
		}
	}
	return r
}

func (r *fakeBookingRepo) Create(_ context.Context, b *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id uint) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %d: %w", id, utils.ErrNotFound)
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Reference == reference {
			copied := *b
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", reference, utils.ErrNotFound)
}

func (r *fakeBookingRepo) SetConfirmed(ctx context.Context, id uint, confirmed bool) (*model.Booking, error) {
	r.mu.Lock()
	b, ok := r.bookings[id]
	if ok {
		b.Confirmed = confirmed
	}
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("booking %d: %w", id, utils.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

func (r *fakeBookingRepo) SetConfirmedMany(_ context.Context, ids []uint, confirmed bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if b, ok := r.bookings[id]; ok {
			b.Confirmed = confirmed
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("booking %d: %w", id, utils.ErrNotFound)
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) matches(b *model.Booking, q database.BookingQuery) bool {
	if q.Confirmed != nil && b.Confirmed != *q.Confirmed {
		return false
	}
	if q.RoomID != nil && b.RoomID != *q.RoomID {
		return false
	}
	if q.CheckInFrom != nil && b.CheckIn.Before(*q.CheckInFrom) {
		return false
	}
	if q.CheckInTo != nil && b.CheckIn.After(*q.CheckInTo) {
		return false
	}
	return true
}

func (r *fakeBookingRepo) List(_ context.Context, q database.BookingQuery) ([]model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Booking
	for _, b := range r.bookings {
		if r.matches(b, q) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if q.Limit > 0 {
		if q.Offset >= len(out) {
			return nil, nil
		}
		end := q.Offset + q.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[q.Offset:end]
	}
	return out, nil
}

func (r *fakeBookingRepo) Count(ctx context.Context, q database.BookingQuery) (int64, error) {
	q.Limit, q.Offset = 0, 0
	list, err := r.List(ctx, q)
	return int64(len(list)), err
}

func (r *fakeBookingRepo) FindOverlapping(_ context.Context, q database.OverlapQuery) ([]model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := DateRange{CheckIn: q.CheckIn, CheckOut: q.CheckOut}
	var out []model.Booking
	for _, b := range r.bookings {
		if b.RoomID != q.RoomID || b.ID == q.ExcludeID {
			continue
		}
		if q.ConfirmedOnly && !b.Confirmed {
			continue
		}
		if Overlaps(DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}, want) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	to       []string
	subjects []string
	bodies   []string
}

func (n *recordingNotifier) Notify(to, subject, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.to = append(n.to, to)
	n.subjects = append(n.subjects, subject)
	n.bodies = append(n.bodies, body)
}

type failingPublisher struct {
	calls int
}

func (p *failingPublisher) Publish(context.Context, notification.Event) error {
	p.calls++
	return errors.New("redis down")
}

func mustDate(s string) utils.CustomDate {
	d, err := utils.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
