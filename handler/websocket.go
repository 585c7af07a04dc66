package handler

import (
	"context"

	"ubwiza_rentals/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequireUpgrade rejects plain HTTP requests to the websocket endpoint.
func RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// BookingFeed relays new booking events from redis to one staff connection.
func (h *Handler) BookingFeed(c *websocket.Conn) {
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubsub := h.Feed.Subscribe(ctx)
	if pubsub == nil {
		_ = c.WriteJSON(fiber.Map{"error": "live feed disabled"})
		return
	}
	defer pubsub.Close()

	// The client never sends anything useful; reading only detects the disconnect.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	channel := pubsub.Channel()
	for {
		select {
		case <-closed:
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				utils.GetLogger().Debug("booking feed client gone", zap.Error(err))
				return
			}
		}
	}
}
