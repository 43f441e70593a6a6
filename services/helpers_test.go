package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/cafe-kiosk/database"
	"github.com/yeremiapane/cafe-kiosk/models"
	"github.com/yeremiapane/cafe-kiosk/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory SQLite database per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	db        *gorm.DB
	svc       *services.OrderService
	americano models.MenuItem
	darkRoast models.MenuItem
	clock     *fakeClock
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupTestDB(t)

	americano := models.MenuItem{Name: "Americano", Price: decimal.NewFromInt(150), Category: "HotCoffee", Calories: 15}
	darkRoast := models.MenuItem{Name: "Dark Roast", Price: decimal.NewFromInt(175), Category: "HotCoffee", Calories: 20}
	require.NoError(t, db.Create(&americano).Error)
	require.NoError(t, db.Create(&darkRoast).Error)

	clock := &fakeClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	svc := services.NewOrderService(db, services.DefaultRates)
	svc.Now = clock.Now

	return &fixture{db: db, svc: svc, americano: americano, darkRoast: darkRoast, clock: clock}
}

// cart is the 150x1 + 175x2 cart: subtotal 500, tax 25, gross 525.
func (f *fixture) cart() []services.OrderLineInput {
	return []services.OrderLineInput{
		{MenuItemID: f.americano.ID, Quantity: 1},
		{MenuItemID: f.darkRoast.ID, Quantity: 2},
	}
}

func (f *fixture) createUser(t *testing.T, email string, points int64, admin bool) models.User {
	t.Helper()
	u := models.User{Name: email, Email: email, Password: "x", RewardPoints: points, IsAdmin: admin}
	require.NoError(t, f.db.Create(&u).Error)
	return u
}

func (f *fixture) balance(t *testing.T, userID uint) int64 {
	t.Helper()
	var u models.User
	require.NoError(t, f.db.First(&u, userID).Error)
	return u.RewardPoints
}

func (f *fixture) countOrders(t *testing.T) (orders, items int64) {
	t.Helper()
	require.NoError(t, f.db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, f.db.Model(&models.OrderItem{}).Count(&items).Error)
	return orders, items
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func uintPtr(v uint) *uint { return &v }

var operator = services.Actor{UserID: 1, IsOperator: true}
