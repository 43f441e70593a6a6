package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultMenuImage = "/placeholder.svg?height=200&width=200"

type MenuItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255); not null" json:"name"`
	Description string          `gorm:"type:text" json:"desc"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2); not null" json:"price"`
	Category    string          `gorm:"type:varchar(100); not null; index" json:"category"`
	Calories    int             `gorm:"not null;default:0" json:"calories"`
	Image       string          `gorm:"type:varchar(255)" json:"image"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updatedAt"`
}
