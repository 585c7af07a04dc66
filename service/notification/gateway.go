package notification

import (
	"context"
	"fmt"

	"ubwiza_rentals/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Gateway delivers one plain-text message.
type Gateway interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SMTPGateway struct {
	send func(...*gomail.Message) error
	from string
}

func NewSMTPGateway(host string, port int, username, password, from string) *SMTPGateway {
	return &SMTPGateway{
		send: gomail.NewDialer(host, port, username, password).DialAndSend,
		from: from,
	}
}

func (g *SMTPGateway) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", g.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	// gomail takes no context; a stalled session is abandoned once ctx is done.
	done := make(chan error, 1)
	go func() { done <- g.send(m) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("smtp send to %s: %w", to, ctx.Err())
	}
}

// LogGateway writes messages to the log instead of sending them.
type LogGateway struct {
	logger *zap.Logger
}

func NewLogGateway(logger *zap.Logger) *LogGateway {
	return &LogGateway{logger: logger}
}

func (g *LogGateway) Send(_ context.Context, to, subject, body string) error {
	g.logger.Info("email not sent, SMTP disabled",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("bodyLength", len(body)),
	)
	return nil
}

// NewGatewayFromConfig picks SMTP when a host is configured.
func NewGatewayFromConfig(logger *zap.Logger) Gateway {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		return NewLogGateway(logger)
	}
	return NewSMTPGateway(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
}
