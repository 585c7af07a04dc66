package notification

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const BookingChannel = "bookings:new"

type Event struct {
	Type      string `json:"type"`
	BookingID uint   `json:"bookingId"`
	Reference string `json:"reference"`
	RoomID    uint   `json:"roomId"`
	Name      string `json:"name"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
}

// Feed publishes booking events for the staff live view. A nil client turns it into a no-op.
type Feed struct {
	client *redis.Client
}

func NewFeed(client *redis.Client) *Feed {
	return &Feed{client: client}
}

func (f *Feed) Publish(ctx context.Context, event Event) error {
	if f == nil || f.client == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return f.client.Publish(ctx, BookingChannel, payload).Err()
}

// Subscribe returns nil when no redis client is configured.
func (f *Feed) Subscribe(ctx context.Context) *redis.PubSub {
	if f == nil || f.client == nil {
		return nil
	}
	return f.client.Subscribe(ctx, BookingChannel)
}
