package persistent

import (
	"solraise/services/donations/internal/model"

	"gorm.io/gorm"
)

// UserStatsRepository applies the effect of a confirmed donation to the
// donor's running totals. Increments happen in the database rather than
// through a read-modify-write pair, so concurrent recordings for the same
// address cannot lose updates.
type UserStatsRepository interface {
	ApplyDonation(address string, amount float64, points int64) (bool, error)
}

type userStatsRepository struct {
	db *gorm.DB
}

func NewUserStatsRepository(db *gorm.DB) UserStatsRepository {
	return &userStatsRepository{db: db}
}

// ApplyDonation returns false when the address has no registered profile.
// Donations from unregistered wallets are valid; they just update nothing.
func (r *userStatsRepository) ApplyDonation(address string, amount float64, points int64) (bool, error) {
	res := r.db.Model(&model.UserModel{}).
		Where("address = ?", address).
		Updates(map[string]interface{}{
			"total_donated":  gorm.Expr("total_donated + ?", amount),
			"donation_count": gorm.Expr("donation_count + 1"),
			"reward_points":  gorm.Expr("reward_points + ?", points),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
