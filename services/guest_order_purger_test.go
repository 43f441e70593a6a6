package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/cafe-kiosk/models"
	"github.com/yeremiapane/cafe-kiosk/services"
)

func TestGuestOrderPurger_RunOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, services.CreateOrderInput{Items: f.cart(), IsGuestOrder: true})
	require.NoError(t, err)
	_, err = f.svc.SetStatus(ctx, operator, order.ID, models.OrderStatusCompleted)
	require.NoError(t, err)

	purger := services.NewGuestOrderPurger(f.svc, 0, time.Minute)
	assert.Equal(t, int64(1), purger.RunOnce(ctx))
	assert.Zero(t, purger.RunOnce(ctx))

	_, err = f.svc.GetOrder(ctx, operator, order.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGuestOrderPurger_LeavesOpenOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, services.CreateOrderInput{Items: f.cart()})
	require.NoError(t, err)
	_, err = f.svc.SetStatus(ctx, operator, order.ID, models.OrderStatusReady)
	require.NoError(t, err)

	f.clock.Advance(24 * time.Hour)
	purger := services.NewGuestOrderPurger(f.svc, time.Hour, time.Minute)
	assert.Zero(t, purger.RunOnce(ctx))

	orders, _ := f.countOrders(t)
	assert.Equal(t, int64(1), orders)
}

func TestGuestOrderPurger_StartStop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, services.CreateOrderInput{Items: f.cart()})
	require.NoError(t, err)
	_, err = f.svc.SetStatus(ctx, operator, order.ID, models.OrderStatusCompleted)
	require.NoError(t, err)

	purger := services.NewGuestOrderPurger(f.svc, 0, 10*time.Millisecond)
	purger.Start()
	purger.Start()

	assert.Eventually(t, func() bool {
		var orders int64
		f.db.Model(&models.Order{}).Count(&orders)
		return orders == 0
	}, 2*time.Second, 10*time.Millisecond)

	purger.Stop()
	purger.Stop()
}

func TestGuestOrderPurger_StopWithoutStart(t *testing.T) {
	purger := services.NewGuestOrderPurger(nil, time.Hour, time.Minute)
	assert.NotPanics(t, purger.Stop)
}
