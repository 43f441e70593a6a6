package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/cafe-kiosk/models"
	"github.com/yeremiapane/cafe-kiosk/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

type menuItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"desc"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Calories    *int             `json:"calories"`
	Image       *string          `json:"image"`
}

// apply copies the set fields onto item and validates the result.
func (r menuItemRequest) apply(item *models.MenuItem) error {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Description != nil {
		item.Description = *r.Description
	}
	if r.Price != nil {
		item.Price = *r.Price
	}
	if r.Category != nil {
		item.Category = *r.Category
	}
	if r.Calories != nil {
		item.Calories = *r.Calories
	}
	if r.Image != nil {
		item.Image = *r.Image
	}

	switch {
	case item.Name == "":
		return errors.New("name is required")
	case item.Category == "":
		return errors.New("category is required")
	case item.Price.IsNegative():
		return errors.New("price must not be negative")
	case item.Calories < 0:
		return errors.New("calories must not be negative")
	}
	if item.Image == "" {
		item.Image = models.DefaultMenuImage
	}
	return nil
}

// GetMenu -> semua item dikelompokkan per kategori
func (mc *MenuController) GetMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("category ASC, name ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	grouped := make(map[string][]models.MenuItem)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	utils.RespondJSON(c, http.StatusOK, "Menu grouped by category", grouped)
}

// GetMenuItem
func (mc *MenuController) GetMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem (operator)
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Price == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price is required"))
		return
	}

	var item models.MenuItem
	if err := req.apply(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem (operator). Orders keep their own price snapshot, so edits
// here never touch order history.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("Menu item not found"))
		return
	}
	if err := req.apply(&item); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem (operator)
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	res := mc.DB.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("Menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": id})
}
