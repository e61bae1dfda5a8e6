package persistent

import (
	"solraise/services/insights/internal/entity"
	"solraise/services/insights/internal/model"

	"gorm.io/gorm"
)

// InsightsRepository exposes full scans of the transfer tables plus a
// batch username lookup. The aggregation views recompute from these on
// every request; nothing is cached or materialized.
type InsightsRepository interface {
	ListUsers() ([]*entity.User, error)
	ListDonations() ([]*entity.DonationRecord, error)
	ListPoolDonations() ([]*entity.PoolDonationRecord, error)
	ListTips() ([]*entity.TipRecord, error)
	UsernamesByAddress(addresses []string) (map[string]string, error)
}

type insightsRepository struct {
	db *gorm.DB
}

func NewInsightsRepository(db *gorm.DB) InsightsRepository {
	return &insightsRepository{db: db}
}

func (r *insightsRepository) ListUsers() ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *insightsRepository) ListDonations() ([]*entity.DonationRecord, error) {
	var donationModels []model.DonationModel
	if err := r.db.Find(&donationModels).Error; err != nil {
		return nil, err
	}

	donations := make([]*entity.DonationRecord, len(donationModels))
	for i := range donationModels {
		donations[i] = ToDonationEntity(&donationModels[i])
	}
	return donations, nil
}

func (r *insightsRepository) ListPoolDonations() ([]*entity.PoolDonationRecord, error) {
	var donationModels []model.PoolDonationModel
	if err := r.db.Find(&donationModels).Error; err != nil {
		return nil, err
	}

	donations := make([]*entity.PoolDonationRecord, len(donationModels))
	for i := range donationModels {
		donations[i] = ToPoolDonationEntity(&donationModels[i])
	}
	return donations, nil
}

func (r *insightsRepository) ListTips() ([]*entity.TipRecord, error) {
	var tipModels []model.TipModel
	if err := r.db.Find(&tipModels).Error; err != nil {
		return nil, err
	}

	tips := make([]*entity.TipRecord, len(tipModels))
	for i := range tipModels {
		tips[i] = ToTipEntity(&tipModels[i])
	}
	return tips, nil
}

// UsernamesByAddress resolves usernames for a set of addresses in a
// single query. Unregistered addresses are simply absent from the map.
func (r *insightsRepository) UsernamesByAddress(addresses []string) (map[string]string, error) {
	usernames := make(map[string]string, len(addresses))
	if len(addresses) == 0 {
		return usernames, nil
	}

	var userModels []model.UserModel
	if err := r.db.Select("address", "username").Where("address IN ?", addresses).Find(&userModels).Error; err != nil {
		return nil, err
	}

	for i := range userModels {
		usernames[userModels[i].Address] = userModels[i].Username
	}
	return usernames, nil
}
