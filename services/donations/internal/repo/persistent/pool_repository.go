package persistent

import (
	"solraise/services/donations/internal/entity"
	"solraise/services/donations/internal/model"

	"gorm.io/gorm"
)

type PoolRepository interface {
	ListPools() ([]*entity.Pool, error)
	GetPoolByID(poolID string) (*entity.Pool, error)
	CreatePoolDonation(donation *entity.PoolDonation) error
	ListPoolDonations() ([]*entity.PoolDonation, error)
	ApplyPoolDonation(poolID, donor string, amount float64) error
}

type poolRepository struct {
	db *gorm.DB
}

func NewPoolRepository(db *gorm.DB) PoolRepository {
	return &poolRepository{db: db}
}

func (r *poolRepository) ListPools() ([]*entity.Pool, error) {
	var poolModels []model.PoolModel
	if err := r.db.Order("id ASC").Find(&poolModels).Error; err != nil {
		return nil, err
	}

	pools := make([]*entity.Pool, len(poolModels))
	for i := range poolModels {
		pools[i] = ToPoolEntity(&poolModels[i])
	}
	return pools, nil
}

func (r *poolRepository) GetPoolByID(poolID string) (*entity.Pool, error) {
	var poolModel model.PoolModel
	if err := r.db.Where("id = ?", poolID).First(&poolModel).Error; err != nil {
		return nil, err
	}
	return ToPoolEntity(&poolModel), nil
}

func (r *poolRepository) CreatePoolDonation(donation *entity.PoolDonation) error {
	donationModel := ToPoolDonationModel(donation)
	if err := r.db.Create(donationModel).Error; err != nil {
		return err
	}
	*donation = *ToPoolDonationEntity(donationModel)
	return nil
}

func (r *poolRepository) ListPoolDonations() ([]*entity.PoolDonation, error) {
	var donationModels []model.PoolDonationModel
	if err := r.db.Order("created_at DESC").Find(&donationModels).Error; err != nil {
		return nil, err
	}

	donations := make([]*entity.PoolDonation, len(donationModels))
	for i := range donationModels {
		donations[i] = ToPoolDonationEntity(&donationModels[i])
	}
	return donations, nil
}

// ApplyPoolDonation rolls a recorded pool donation into the pool's
// aggregate counters. It runs after the donation row is created, so a
// first-time donor shows exactly one row for the (pool, donor) pair; the
// count and the increments share one transaction to keep concurrent
// first-time donations from double counting a donor.
func (r *poolRepository) ApplyPoolDonation(poolID, donor string, amount float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var donationRows int64
		if err := tx.Model(&model.PoolDonationModel{}).
			Where("pool_id = ? AND donor = ?", poolID, donor).
			Count(&donationRows).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"total_donated": gorm.Expr("total_donated + ?", amount),
		}
		if donationRows <= 1 {
			updates["donor_count"] = gorm.Expr("donor_count + 1")
		}

		res := tx.Model(&model.PoolModel{}).Where("id = ?", poolID).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
