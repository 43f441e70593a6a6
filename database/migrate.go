package database

import (
	"github.com/yeremiapane/cafe-kiosk/models"
	"github.com/yeremiapane/cafe-kiosk/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the kiosk uses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
