package models

import "time"

// User doubles as the loyalty account: RewardPoints is the points balance and
// must never go negative.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255); not null" json:"name"`
	Email        string    `gorm:"type:varchar(255); unique;not null" json:"email"`
	Password     string    `gorm:"type:varchar(255); not null" json:"-"`
	RewardPoints int64     `gorm:"not null;default:0" json:"rewardPoints"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
