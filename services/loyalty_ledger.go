package services

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/cafe-kiosk/models"
	"gorm.io/gorm"
)

// LoyaltyLedger moves reward points for a checkout. It has no transaction of
// its own: ApplyOrder must run on the transaction that writes the order so the
// two persist or roll back together.
type LoyaltyLedger struct{}

func NewLoyaltyLedger() *LoyaltyLedger {
	return &LoyaltyLedger{}
}

// ApplyOrder debits redeemed and credits earned points in one conditional
// UPDATE. The balance check happens inside the statement, so two checkouts
// against the same account cannot both spend the same points. gorm also bumps
// updated_at, which keeps RowsAffected at 1 on MySQL even when redeemed equals
// earned.
func (l *LoyaltyLedger) ApplyOrder(tx *gorm.DB, userID uint, redeemed, earned int64) (int64, error) {
	if redeemed < 0 || earned < 0 {
		return 0, fmt.Errorf("%w: ledger amounts must not be negative", ErrInvalidInput)
	}

	res := tx.Model(&models.User{}).
		Where("id = ? AND reward_points >= ?", userID, redeemed).
		Update("reward_points", gorm.Expr("reward_points - ? + ?", redeemed, earned))
	if res.Error != nil {
		return 0, fmt.Errorf("%w: update reward points: %v", ErrTransientStore, res.Error)
	}

	var user models.User
	if err := tx.Select("id", "reward_points").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return 0, fmt.Errorf("%w: read reward points: %v", ErrTransientStore, err)
	}

	if res.RowsAffected == 0 {
		return user.RewardPoints, fmt.Errorf("%w: balance %d, requested %d", ErrInsufficientPoints, user.RewardPoints, redeemed)
	}
	return user.RewardPoints, nil
}
