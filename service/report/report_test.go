package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"ubwiza_rentals/database"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"
)

var reportNow = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

type stubBookings struct {
	database.BookingRepository
	bookings []model.Booking
}

func (s *stubBookings) filter(q database.BookingQuery) []model.Booking {
	var out []model.Booking
	for _, b := range s.bookings {
		if q.Confirmed != nil && b.Confirmed != *q.Confirmed {
			continue
		}
		if q.CreatedSince != nil && b.CreatedAt.Before(*q.CreatedSince) {
			continue
		}
		if q.CheckInFrom != nil && b.CheckIn.Before(*q.CheckInFrom) {
			continue
		}
		if q.CheckInTo != nil && b.CheckIn.After(*q.CheckInTo) {
			continue
		}
		out = append(out, b)
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func (s *stubBookings) Count(_ context.Context, q database.BookingQuery) (int64, error) {
	return int64(len(s.filter(q))), nil
}

func (s *stubBookings) List(_ context.Context, q database.BookingQuery) ([]model.Booking, error) {
	return s.filter(q), nil
}

type stubRooms struct {
	database.RoomRepository
}

func (stubRooms) Count(_ context.Context, featuredOnly bool) (int64, error) {
	if featuredOnly {
		return 2, nil
	}
	return 5, nil
}

type stubMessages struct {
	database.ContactRepository
	count int64
}

func (s stubMessages) Count(context.Context) (int64, error) { return s.count, nil }

func (s stubMessages) List(_ context.Context, limit, _ int) ([]model.ContactMessage, error) {
	out := make([]model.ContactMessage, 0, limit)
	for i := 0; i < limit && int64(i) < s.count; i++ {
		out = append(out, model.ContactMessage{ID: uint(i + 1)})
	}
	return out, nil
}

type captureNotifier struct {
	to, subject, body string
	calls             int
}

func (n *captureNotifier) Notify(to, subject, body string) {
	n.to, n.subject, n.body = to, subject, body
	n.calls++
}

func booking(id uint, createdDaysAgo int, checkIn string, confirmed bool) model.Booking {
	in, _ := utils.ParseDate(checkIn)
	return model.Booking{
		DTO:       model.DTO{ID: id, CreatedAt: reportNow.AddDate(0, 0, -createdDaysAgo)},
		Reference: "ref-" + checkIn,
		RoomID:    1,
		Email:     "guest@example.com",
		CheckIn:   in,
		CheckOut:  in.AddDays(3),
		Guests:    2,
		Confirmed: confirmed,
	}
}

func newReportFixture() (*DefaultReportService, *captureNotifier) {
	notifier := &captureNotifier{}
	svc := &DefaultReportService{
		Rooms: stubRooms{},
		Bookings: &stubBookings{bookings: []model.Booking{
			booking(1, 1, "2024-05-22", false),
			booking(2, 3, "2024-06-10", true),
			booking(3, 10, "2024-05-25", false),
			booking(4, 40, "2024-05-01", true),
			booking(5, 2, "2024-05-30", false),
		}},
		Messages: stubMessages{count: 9},
		Notifier: notifier,
		Operator: "owner@ubwiza.rw",
		Now:      func() time.Time { return reportNow },
	}
	return svc, notifier
}

func TestBookingReport(t *testing.T) {
	svc, _ := newReportFixture()
	r, err := svc.BookingReport(context.Background())
	if err != nil {
		t.Fatalf("BookingReport: %v", err)
	}
	want := BookingReport{Last7Days: 3, Last30Days: 4, TotalBookings: 5, Confirmed: 2}
	if *r != want {
		t.Errorf("report = %+v, want %+v", *r, want)
	}
}

func TestBookingReportCountsWholeBoundaryDay(t *testing.T) {
	svc, _ := newReportFixture()
	early := booking(6, 7, "2024-06-01", false)
	early.CreatedAt = time.Date(2024, 5, 13, 0, 30, 0, 0, time.UTC)
	dayBefore := booking(7, 8, "2024-06-02", false)
	dayBefore.CreatedAt = time.Date(2024, 5, 12, 23, 59, 0, 0, time.UTC)
	stub := svc.Bookings.(*stubBookings)
	stub.bookings = append(stub.bookings, early, dayBefore)

	r, err := svc.BookingReport(context.Background())
	if err != nil {
		t.Fatalf("BookingReport: %v", err)
	}
	if r.Last7Days != 4 {
		t.Errorf("Last7Days = %d, want 4 (created early on the boundary day counts)", r.Last7Days)
	}
}

func TestDashboard(t *testing.T) {
	svc, _ := newReportFixture()
	d, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if d.TotalBookings != 5 || d.PendingBookings != 3 || d.ConfirmedBookings != 2 {
		t.Errorf("booking counts = %+v", d)
	}
	if d.TotalRooms != 5 || d.FeaturedRooms != 2 || d.TotalMessages != 9 {
		t.Errorf("other counts = %+v", d)
	}
	if len(d.RecentBookings) != RecentItems || len(d.RecentMessages) != RecentItems {
		t.Errorf("recent = %d bookings, %d messages", len(d.RecentBookings), len(d.RecentMessages))
	}
}

func TestSendPendingDigest(t *testing.T) {
	svc, notifier := newReportFixture()
	if err := svc.SendPendingDigest(context.Background()); err != nil {
		t.Fatalf("SendPendingDigest: %v", err)
	}
	if notifier.calls != 1 || notifier.to != "owner@ubwiza.rw" {
		t.Fatalf("notifier = %+v", notifier)
	}
	// Pending within the week: bookings 1 and 3. Booking 5 checks in after the horizon.
	if !strings.HasPrefix(notifier.body, "2 booking request(s)") {
		t.Errorf("body = %q", notifier.body)
	}
	if !strings.Contains(notifier.body, "ref-2024-05-22") || strings.Contains(notifier.body, "ref-2024-05-30") {
		t.Errorf("body lists the wrong bookings:\n%s", notifier.body)
	}
}

func TestSendPendingDigestNothingPending(t *testing.T) {
	svc, notifier := newReportFixture()
	svc.Bookings = &stubBookings{}
	if err := svc.SendPendingDigest(context.Background()); err != nil {
		t.Fatalf("SendPendingDigest: %v", err)
	}
	if notifier.calls != 0 {
		t.Error("digest sent with no pending bookings")
	}
}
