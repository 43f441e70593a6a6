package models

import "github.com/shopspring/decimal"

// OrderItem copies name and price from the menu at purchase time, so later
// catalog edits never change a historical order.
type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"not null;index" json:"orderId"`
	MenuItemID uint            `gorm:"not null" json:"menuItem"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity   int             `gorm:"not null" json:"quantity"`
}
