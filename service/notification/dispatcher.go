package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const sendTimeout = 30 * time.Second

// Dispatcher sends mail in the background. Failures are logged, never returned.
type Dispatcher struct {
	gateway Gateway
	logger  *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(gateway Gateway, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{gateway: gateway, logger: logger, timeout: sendTimeout}
}

func (d *Dispatcher) Notify(to, subject, body string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.gateway.Send(ctx, to, subject, body); err != nil {
			d.logger.Warn("notification failed",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until every in-flight send has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
