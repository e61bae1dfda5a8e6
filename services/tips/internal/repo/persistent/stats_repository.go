package persistent

import (
	"solraise/services/tips/internal/model"

	"gorm.io/gorm"
)

// UserStatsRepository applies the effect of a confirmed tip to the sender
// and recipient running totals. Increments run in the database so that
// concurrent tips touching the same address cannot lose updates.
type UserStatsRepository interface {
	ApplySenderStats(address string, amount float64, points int64) (bool, error)
	ApplyRecipientStats(address string, amount float64) (bool, error)
}

type userStatsRepository struct {
	db *gorm.DB
}

func NewUserStatsRepository(db *gorm.DB) UserStatsRepository {
	return &userStatsRepository{db: db}
}

func (r *userStatsRepository) ApplySenderStats(address string, amount float64, points int64) (bool, error) {
	res := r.db.Model(&model.UserModel{}).
		Where("address = ?", address).
		Updates(map[string]interface{}{
			"total_sent":     gorm.Expr("total_sent + ?", amount),
			"tip_count_sent": gorm.Expr("tip_count_sent + 1"),
			"reward_points":  gorm.Expr("reward_points + ?", points),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ApplyRecipientStats awards no points; receiving a tip is not a rewarded
// activity.
func (r *userStatsRepository) ApplyRecipientStats(address string, amount float64) (bool, error) {
	res := r.db.Model(&model.UserModel{}).
		Where("address = ?", address).
		Updates(map[string]interface{}{
			"total_received":     gorm.Expr("total_received + ?", amount),
			"tip_count_received": gorm.Expr("tip_count_received + 1"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
