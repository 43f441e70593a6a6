package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/yeremiapane/cafe-kiosk/models"
	"gorm.io/gorm"
)

const maxOrderNumberAttempts = 5

// Actor is the caller of an order operation as resolved by the auth layer.
// IsOperator is the capability required for the admin panel operations.
type Actor struct {
	UserID     uint
	IsOperator bool
}

// OrderLineInput is one requested cart line; price and name come from the menu.
type OrderLineInput struct {
	MenuItemID uint `json:"id"`
	Quantity   int  `json:"quantity"`
}

type CreateOrderInput struct {
	Items        []OrderLineInput
	DineType     string
	UsedPoints   int64
	IsGuestOrder bool
	// UserID is the authenticated customer, nil for anonymous checkout.
	UserID *uint
}

// OrderService owns order creation, reads and status changes.
type OrderService struct {
	DB     *gorm.DB
	Ledger *LoyaltyLedger
	Rates  Rates

	// Now and NextOrderNumber are replaceable in tests.
	Now             func() time.Time
	NextOrderNumber func() string
}

func NewOrderService(db *gorm.DB, rates Rates) *OrderService {
	return &OrderService{
		DB:              db,
		Ledger:          NewLoyaltyLedger(),
		Rates:           rates,
		Now:             func() time.Time { return time.Now().UTC() },
		NextOrderNumber: randomOrderNumber,
	}
}

// randomOrderNumber returns a 4-digit display number (1000-9999).
func randomOrderNumber() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}

// PreviewOrder prices a cart exactly like CreateOrder without writing anything.
func (s *OrderService) PreviewOrder(ctx context.Context, items []OrderLineInput, usedPoints int64, userID *uint, isGuest bool) (PricingResult, error) {
	if usedPoints < 0 {
		return PricingResult{}, fmt.Errorf("%w: usedPoints must not be negative", ErrInvalidInput)
	}
	db := s.DB.WithContext(ctx)

	lines, _, err := s.resolveLines(db, items)
	if err != nil {
		return PricingResult{}, err
	}

	member := !isGuest && userID != nil
	var available int64
	if member {
		user, err := findUser(db, *userID)
		if err != nil {
			return PricingResult{}, err
		}
		available = user.RewardPoints
	}
	return ComputePricing(lines, usedPoints, member, available, s.Rates)
}

// CreateOrder prices the cart, stores the order and moves loyalty points in a
// single transaction. Nothing persists if any step fails. Store failures are
// returned as ErrTransientStore and are never retried here.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}
	if in.DineType == "" {
		in.DineType = models.DineTypeDineIn
	}
	if !models.IsValidDineType(in.DineType) {
		return nil, fmt.Errorf("%w: dine type %q", ErrInvalidInput, in.DineType)
	}
	if in.UsedPoints < 0 {
		return nil, fmt.Errorf("%w: usedPoints must not be negative", ErrInvalidInput)
	}

	guest := in.IsGuestOrder || in.UserID == nil
	var order models.Order

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines, snapshot, err := s.resolveLines(tx, in.Items)
		if err != nil {
			return err
		}

		var available int64
		if !guest {
			user, err := findUser(tx, *in.UserID)
			if err != nil {
				return err
			}
			available = user.RewardPoints
		}

		pricing, err := ComputePricing(lines, in.UsedPoints, !guest, available, s.Rates)
		if err != nil {
			return err
		}
		if !pricing.Total.IsPositive() {
			return fmt.Errorf("%w: order total must be greater than zero", ErrInvalidInput)
		}

		number, err := s.allocateOrderNumber(tx)
		if err != nil {
			return err
		}

		order = models.Order{
			OrderNumber:  number,
			Items:        snapshot,
			DineType:     in.DineType,
			Subtotal:     pricing.Subtotal,
			Tax:          pricing.TaxAmount,
			UsedPoints:   pricing.PointsRedeemed,
			EarnedPoints: pricing.PointsEarned,
			Total:        pricing.Total,
			Status:       models.OrderStatusPreparing,
			IsGuestOrder: guest,
		}
		if !guest {
			order.UserID = in.UserID
		}

		if err := tx.Create(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %s", ErrOrderNumberCollision, number)
			}
			return storeError("create order", err)
		}

		if !guest {
			if _, err := s.Ledger.ApplyOrder(tx, *in.UserID, pricing.PointsRedeemed, pricing.PointsEarned); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeError("create order", err)
	}
	return &order, nil
}

// GetOrder returns one order to its owner or to an operator.
func (s *OrderService) GetOrder(ctx context.Context, actor Actor, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, storeError("get order", err)
	}
	if !actor.IsOperator && (order.UserID == nil || *order.UserID != actor.UserID) {
		return nil, ErrForbidden
	}
	return &order, nil
}

// ListOrdersFor returns a customer's orders, newest first.
func (s *OrderService) ListOrdersFor(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, storeError("list orders", err)
	}
	return orders, nil
}

// ListAllOrders returns every order, newest first, optionally only those in
// status. Operators only.
func (s *OrderService) ListAllOrders(ctx context.Context, actor Actor, status string) ([]models.Order, error) {
	if !actor.IsOperator {
		return nil, ErrForbidden
	}
	q := s.DB.WithContext(ctx).
		Preload("Items").
		Preload("User").
		Order("created_at DESC, id DESC")
	if status != "" {
		if !models.IsValidOrderStatus(status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, storeError("list all orders", err)
	}
	return orders, nil
}

// SetStatus moves an order forward: Preparing -> Ready -> Completed, with
// Preparing -> Completed also allowed. Completed is terminal and no order
// moves backwards. Setting the current status again is a no-op.
func (s *OrderService) SetStatus(ctx context.Context, actor Actor, id uint, status string) (*models.Order, error) {
	if !actor.IsOperator {
		return nil, ErrForbidden
	}
	if !models.IsValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var order models.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %d", ErrNotFound, id)
			}
			return err
		}

		if order.Status == models.OrderStatusCompleted {
			return fmt.Errorf("%w: order %s is already completed", ErrInvalidStatus, order.OrderNumber)
		}
		if statusRank(status) < statusRank(order.Status) {
			return fmt.Errorf("%w: cannot move order %s from %s back to %s", ErrInvalidStatus, order.OrderNumber, order.Status, status)
		}
		if status == order.Status {
			return nil
		}

		updates := map[string]interface{}{"status": status}
		if status == models.OrderStatusCompleted {
			updates["completed_at"] = s.Now()
		}
		return tx.Model(&order).Updates(updates).Error
	})
	if err != nil {
		return nil, storeError("set order status", err)
	}

	if err := s.DB.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, storeError("reload order", err)
	}
	return &order, nil
}

// PurgeStaleGuestOrders deletes guest orders completed at least retention ago
// and returns how many were removed. Orders already gone are simply not found,
// so repeated runs are harmless.
func (s *OrderService) PurgeStaleGuestOrders(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.Now().Add(-retention)

	var purged int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		err := tx.Model(&models.Order{}).
			Where("is_guest_order = ? AND status = ? AND completed_at IS NOT NULL AND completed_at <= ?",
				true, models.OrderStatusCompleted, cutoff).
			Pluck("id", &ids).Error
		if err != nil || len(ids) == 0 {
			return err
		}

		if err := tx.Where("order_id IN ?", ids).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Order{})
		purged = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, storeError("purge guest orders", err)
	}
	return purged, nil
}

// resolveLines looks up every requested menu item and returns the priced cart
// lines together with the order item snapshot.
func (s *OrderService) resolveLines(db *gorm.DB, items []OrderLineInput) ([]CartLine, []models.OrderItem, error) {
	if len(items) == 0 {
		return nil, nil, nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, nil, fmt.Errorf("%w: quantity for item %d must be positive", ErrInvalidInput, item.MenuItemID)
		}
		ids = append(ids, item.MenuItemID)
	}

	var menu []models.MenuItem
	if err := db.Where("id IN ?", ids).Find(&menu).Error; err != nil {
		return nil, nil, storeError("load menu items", err)
	}
	byID := make(map[uint]models.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	lines := make([]CartLine, 0, len(items))
	snapshot := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		m, ok := byID[item.MenuItemID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: menu item %d", ErrNotFound, item.MenuItemID)
		}
		lines = append(lines, CartLine{ItemID: m.ID, UnitPrice: m.Price, Quantity: item.Quantity})
		snapshot = append(snapshot, models.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			Price:      m.Price,
			Quantity:   item.Quantity,
		})
	}
	return lines, snapshot, nil
}

// allocateOrderNumber draws display numbers until one is not held by a stored
// order. It gives up after maxOrderNumberAttempts.
func (s *OrderService) allocateOrderNumber(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		candidate := s.NextOrderNumber()

		var count int64
		if err := tx.Model(&models.Order{}).Where("order_number = ?", candidate).Count(&count).Error; err != nil {
			return "", storeError("check order number", err)
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrOrderNumberCollision, maxOrderNumberAttempts)
}

func findUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, storeError("load user", err)
	}
	return &user, nil
}

func statusRank(status string) int {
	switch status {
	case models.OrderStatusPreparing:
		return 0
	case models.OrderStatusReady:
		return 1
	case models.OrderStatusCompleted:
		return 2
	}
	return -1
}

// storeError passes domain errors through and marks anything else as a
// transient store failure.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		ErrInvalidInput, ErrInsufficientPoints, ErrInvalidStatus, ErrNotFound,
		ErrForbidden, ErrOrderNumberCollision, ErrTransientStore,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrTransientStore, op, err)
}
