package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/seva/pkg/sms"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second
	sendTimeout   = 15 * time.Second
)

// Dispatcher delivers SMS in the background. A failed delivery is retried and
// then logged; it never fails the request that queued it.
type Dispatcher struct {
	pool          WorkerPoolI
	sender        sms.Sender
	retryInterval time.Duration
}

func New(pool WorkerPoolI, sender sms.Sender) *Dispatcher {
	return &Dispatcher{
		pool:          pool,
		sender:        sender,
		retryInterval: retryInterval,
	}
}

// Notify queues a message for phone. It only fails if the message could not be queued.
func (d *Dispatcher) Notify(ctx context.Context, phone, text string) error {
	sendCtx := context.WithoutCancel(ctx)
	return d.pool.AddTask(ctx, func() error {
		return d.send(sendCtx, phone, text)
	})
}

func (d *Dispatcher) send(ctx context.Context, phone, text string) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		err = d.sender.Send(attemptCtx, phone, text)
		cancel()
		if err == nil {
			return nil
		}
		zap.L().Warn("sms delivery failed", zap.String("to", sms.E164(phone)), zap.Int("attempt", attempt), zap.Error(err))
		if attempt < maxRetries {
			time.Sleep(d.retryInterval * time.Duration(attempt))
		}
	}
	return fmt.Errorf("failed to deliver sms to %s after %d retries: %w", sms.E164(phone), maxRetries, err)
}

func (d *Dispatcher) Close() {
	d.pool.Close()
}
