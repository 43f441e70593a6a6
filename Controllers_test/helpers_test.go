package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/cafe-kiosk/config"
	"github.com/yeremiapane/cafe-kiosk/database"
	"github.com/yeremiapane/cafe-kiosk/models"
	"github.com/yeremiapane/cafe-kiosk/router"
	"github.com/yeremiapane/cafe-kiosk/services"
	"github.com/yeremiapane/cafe-kiosk/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	db     *gorm.DB
	router *gin.Engine
	orders *services.OrderService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	_ = utils.InitLogger("warn", "text")
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	cfg := config.Default()
	orders := services.NewOrderService(db, services.DefaultRates)
	return &testApp{db: db, router: router.SetupRouter(db, cfg, orders), orders: orders}
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

// register creates an account over HTTP and returns its token and id.
func (a *testApp) register(t *testing.T, name, email string) (string, uint) {
	t.Helper()
	w, resp := a.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.Token, data.User.ID
}

func (a *testApp) setPoints(t *testing.T, userID uint, points int64) {
	t.Helper()
	require.NoError(t, a.db.Model(&models.User{}).Where("id = ?", userID).Update("reward_points", points).Error)
}

func (a *testApp) points(t *testing.T, userID uint) int64 {
	t.Helper()
	var u models.User
	require.NoError(t, a.db.First(&u, userID).Error)
	return u.RewardPoints
}

// seedCoffee stores the two menu items used by the checkout tests.
func (a *testApp) seedCoffee(t *testing.T) (americano, darkRoast models.MenuItem) {
	t.Helper()
	americano = models.MenuItem{Name: "Americano", Price: decimal.NewFromInt(150), Category: "HotCoffee"}
	darkRoast = models.MenuItem{Name: "Dark Roast", Price: decimal.NewFromInt(175), Category: "HotCoffee"}
	require.NoError(t, a.db.Create(&americano).Error)
	require.NoError(t, a.db.Create(&darkRoast).Error)
	return americano, darkRoast
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

func assertJSONDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}
