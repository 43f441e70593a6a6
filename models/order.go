package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status
const (
	OrderStatusPreparing = "Preparing"
	OrderStatusReady     = "Ready"
	OrderStatusCompleted = "Completed"
)

// Dine type
const (
	DineTypeDineIn   = "Dine-In"
	DineTypeTakeaway = "Takeaway"
)

// Order is the stored snapshot of a checkout. Items and the pricing columns are
// written once at creation; afterwards only Status and CompletedAt change.
type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	OrderNumber  string          `gorm:"type:varchar(16);uniqueIndex;not null" json:"orderNumber"`
	UserID       *uint           `gorm:"index" json:"userId"`
	User         *User           `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user,omitempty"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	DineType     string          `gorm:"type:varchar(20);not null;default:'Dine-In'" json:"dineType"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"subtotal"`
	Tax          decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"tax"`
	UsedPoints   int64           `gorm:"not null;default:0" json:"usedPoints"`
	EarnedPoints int64           `gorm:"not null;default:0" json:"earnedPoints"`
	Total        decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"total"`
	Status       string          `gorm:"type:varchar(20);not null;default:'Preparing';index" json:"status"`
	IsGuestOrder bool            `gorm:"not null;default:false;index" json:"isGuestOrder"`
	CompletedAt  *time.Time      `gorm:"index" json:"completedAt,omitempty"`
	CreatedAt    time.Time       `gorm:"not null;index" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updatedAt"`
}

// IsValidOrderStatus reports whether s is one of the three order states.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted:
		return true
	}
	return false
}

func IsValidDineType(s string) bool {
	return s == DineTypeDineIn || s == DineTypeTakeaway
}
