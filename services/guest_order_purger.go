package services

import (
	"context"
	"sync"
	"time"

	"github.com/yeremiapane/cafe-kiosk/utils"
)

// GuestOrderPurger periodically deletes completed guest orders once their
// retention window has passed. It runs on its own goroutine and only logs
// failures; request handling never waits on it.
type GuestOrderPurger struct {
	Orders    *OrderService
	Retention time.Duration
	Interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewGuestOrderPurger(orders *OrderService, retention, interval time.Duration) *GuestOrderPurger {
	return &GuestOrderPurger{
		Orders:    orders,
		Retention: retention,
		Interval:  interval,
	}
}

// Start launches the purge loop. Calling Start on a running purger does nothing.
func (p *GuestOrderPurger) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.RunOnce(ctx)
			case <-ctx.Done():
				return
			}
		}
	}(p.done)

	utils.InfoLogger.WithFields(map[string]interface{}{
		"retention": p.Retention.String(),
		"interval":  p.Interval.String(),
	}).Info("Guest order purger started")
}

// Stop ends the loop and waits for an in-flight run to finish.
func (p *GuestOrderPurger) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	utils.InfoLogger.Info("Guest order purger stopped")
}

// RunOnce performs a single purge pass and returns the number of deleted orders.
func (p *GuestOrderPurger) RunOnce(ctx context.Context) int64 {
	purged, err := p.Orders.PurgeStaleGuestOrders(ctx, p.Retention)
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("Purging guest orders failed")
		return 0
	}
	if purged > 0 {
		utils.InfoLogger.Printf("Purged %d completed guest orders", purged)
	}
	return purged
}
