package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/cafe-kiosk/database"
	"github.com/yeremiapane/cafe-kiosk/models"
)

func TestGetMenu_GroupedByCategory(t *testing.T) {
	app := setupTestApp(t)
	require.NoError(t, database.SeedMenu(app.db))
	require.NoError(t, database.SeedMenu(app.db), "seeding twice is a no-op")

	w, resp := app.do(t, http.MethodGet, "/api/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var grouped map[string][]models.MenuItem
	decode(t, resp.Data, &grouped)
	assert.Contains(t, grouped, "HotCoffee")
	assert.Contains(t, grouped, "ColdCoffee")
	assert.Contains(t, grouped, "Snacks")
	assert.Contains(t, grouped, "Desserts")

	total := 0
	for category, items := range grouped {
		total += len(items)
		for i, item := range items {
			assert.Equal(t, category, item.Category)
			if i > 0 {
				assert.LessOrEqual(t, items[i-1].Name, item.Name)
			}
		}
	}
	var stored int64
	require.NoError(t, app.db.Model(&models.MenuItem{}).Count(&stored).Error)
	assert.Equal(t, int(stored), total)
}

func TestMenuCRUD_OperatorOnly(t *testing.T) {
	app := setupTestApp(t)
	adminToken, _ := app.register(t, "Admin", "admin@cafe.com")
	memberToken, _ := app.register(t, "Asha", "asha@example.com")

	item := map[string]interface{}{
		"name": "Flat White", "desc": "Velvety", "price": 185, "category": "HotCoffee", "calories": 110,
	}

	w, _ := app.do(t, http.MethodPost, "/api/menu", memberToken, item)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = app.do(t, http.MethodPost, "/api/menu", "", item)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := app.do(t, http.MethodPost, "/api/menu", adminToken, item)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.MenuItem
	decode(t, resp.Data, &created)
	assert.Equal(t, "Flat White", created.Name)
	assert.Equal(t, "Velvety", created.Description)
	assert.Equal(t, models.DefaultMenuImage, created.Image)
	assertJSONDecimal(t, "185", created.Price)

	path := fmt.Sprintf("/api/menu/%d", created.ID)
	w, resp = app.do(t, http.MethodPut, path, adminToken, map[string]interface{}{"price": 190.5})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.MenuItem
	decode(t, resp.Data, &updated)
	assertJSONDecimal(t, "190.5", updated.Price)
	assert.Equal(t, "Flat White", updated.Name)

	w, _ = app.do(t, http.MethodPut, path, adminToken, map[string]interface{}{"price": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = app.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = app.do(t, http.MethodDelete, path, memberToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = app.do(t, http.MethodDelete, path, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = app.do(t, http.MethodDelete, path, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = app.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMenuItem_Validation(t *testing.T) {
	app := setupTestApp(t)
	adminToken, _ := app.register(t, "Admin", "admin@cafe.com")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing price", map[string]interface{}{"name": "Mocha", "category": "HotCoffee"}},
		{"missing name", map[string]interface{}{"price": 100, "category": "HotCoffee"}},
		{"missing category", map[string]interface{}{"name": "Mocha", "price": 100}},
		{"negative calories", map[string]interface{}{"name": "Mocha", "price": 100, "category": "HotCoffee", "calories": -3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := app.do(t, http.MethodPost, "/api/menu", adminToken, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	w, _ := app.do(t, http.MethodGet, "/api/menu/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
