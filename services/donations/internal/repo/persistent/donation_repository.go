package persistent

import (
	"solraise/services/donations/internal/entity"
	"solraise/services/donations/internal/model"

	"gorm.io/gorm"
)

type DonationRepository interface {
	Create(donation *entity.Donation) error
	List() ([]*entity.Donation, error)
}

type donationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(donation *entity.Donation) error {
	donationModel := ToDonationModel(donation)
	if err := r.db.Create(donationModel).Error; err != nil {
		return err
	}
	*donation = *ToDonationEntity(donationModel)
	return nil
}

func (r *donationRepository) List() ([]*entity.Donation, error) {
	var donationModels []model.DonationModel
	if err := r.db.Order("created_at DESC").Find(&donationModels).Error; err != nil {
		return nil, err
	}

	donations := make([]*entity.Donation, len(donationModels))
	for i := range donationModels {
		donations[i] = ToDonationEntity(&donationModels[i])
	}
	return donations, nil
}
