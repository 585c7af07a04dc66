package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ubwiza_rentals/config"
	"ubwiza_rentals/database"
	"ubwiza_rentals/model"
	"ubwiza_rentals/utils"

	"go.uber.org/zap"
)

const (
	RecentItems   = 5
	DigestHorizon = 7
	digestSubject = "Pending booking requests"
)

type ReportService interface {
	BookingReport(ctx context.Context) (*BookingReport, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	SendPendingDigest(ctx context.Context) error
}

type Notifier interface {
	Notify(to, subject, body string)
}

type DefaultReportService struct {
	Rooms    database.RoomRepository
	Bookings database.BookingRepository
	Messages database.ContactRepository
	Notifier Notifier
	Operator string
	Now      func() time.Time
}

func NewReportService(repos *database.Repositories, notifier Notifier, operator string) *DefaultReportService {
	return &DefaultReportService{
		Rooms:    repos.Rooms,
		Bookings: repos.Bookings,
		Messages: repos.Messages,
		Notifier: notifier,
		Operator: operator,
		Now:      time.Now,
	}
}

type BookingReport struct {
	Last7Days     int64 `json:"last7Days"`
	Last30Days    int64 `json:"last30Days"`
	TotalBookings int64 `json:"totalBookings"`
	Confirmed     int64 `json:"confirmed"`
}

type Dashboard struct {
	TotalBookings     int64                  `json:"totalBookings"`
	PendingBookings   int64                  `json:"pendingBookings"`
	ConfirmedBookings int64                  `json:"confirmedBookings"`
	TotalRooms        int64                  `json:"totalRooms"`
	FeaturedRooms     int64                  `json:"featuredRooms"`
	TotalMessages     int64                  `json:"totalMessages"`
	RecentBookings    []model.Booking        `json:"recentBookings"`
	RecentMessages    []model.ContactMessage `json:"recentMessages"`
}

// BookingReport counts bookings by creation date. The windows start at local
// midnight, so everything created on the boundary day is included.
func (s *DefaultReportService) BookingReport(ctx context.Context) (*BookingReport, error) {
	loc := config.Location()
	y, m, d := s.Now().In(loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, 0, -30)

	var r BookingReport
	var err error
	if r.Last7Days, err = s.Bookings.Count(ctx, database.BookingQuery{CreatedSince: &weekAgo}); err != nil {
		return nil, err
	}
	if r.Last30Days, err = s.Bookings.Count(ctx, database.BookingQuery{CreatedSince: &monthAgo}); err != nil {
		return nil, err
	}
	if r.TotalBookings, err = s.Bookings.Count(ctx, database.BookingQuery{}); err != nil {
		return nil, err
	}
	if r.Confirmed, err = s.Bookings.Count(ctx, database.BookingQuery{Confirmed: utils.Ptr(true)}); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *DefaultReportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	var err error
	if d.TotalBookings, err = s.Bookings.Count(ctx, database.BookingQuery{}); err != nil {
		return nil, err
	}
	if d.ConfirmedBookings, err = s.Bookings.Count(ctx, database.BookingQuery{Confirmed: utils.Ptr(true)}); err != nil {
		return nil, err
	}
	d.PendingBookings = d.TotalBookings - d.ConfirmedBookings
	if d.TotalRooms, err = s.Rooms.Count(ctx, false); err != nil {
		return nil, err
	}
	if d.FeaturedRooms, err = s.Rooms.Count(ctx, true); err != nil {
		return nil, err
	}
	if d.TotalMessages, err = s.Messages.Count(ctx); err != nil {
		return nil, err
	}
	if d.RecentBookings, err = s.Bookings.List(ctx, database.BookingQuery{Limit: RecentItems}); err != nil {
		return nil, err
	}
	if d.RecentMessages, err = s.Messages.List(ctx, RecentItems, 0); err != nil {
		return nil, err
	}
	return &d, nil
}

// SendPendingDigest mails the operator the pending requests arriving within
// the next week. Nothing is sent when there are none.
func (s *DefaultReportService) SendPendingDigest(ctx context.Context) error {
	if s.Notifier == nil || s.Operator == "" {
		return nil
	}
	today := utils.DateOf(s.Now().In(config.Location()))
	until := today.AddDays(DigestHorizon)

	pending, err := s.Bookings.List(ctx, database.BookingQuery{
		Confirmed:   utils.Ptr(false),
		CheckInFrom: &today,
		CheckInTo:   &until,
	})
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	s.Notifier.Notify(s.Operator, digestSubject, digestBody(pending, today))
	utils.GetLogger().Info("pending booking digest queued", zap.Int("bookings", len(pending)))
	return nil
}

func digestBody(pending []model.Booking, today utils.CustomDate) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d booking request(s) awaiting confirmation with check-in from %s:\n\n", len(pending), today)
	for _, b := range pending {
		title := fmt.Sprintf("room #%d", b.RoomID)
		if b.Room != nil {
			title = b.Room.Title
		}
		fmt.Fprintf(&sb, "- %s: %s, %s to %s, %d guest(s), %s / %s\n",
			b.Reference, title, b.CheckIn, b.CheckOut, b.Guests, b.Email, b.Phone)
	}
	return sb.String()
}
