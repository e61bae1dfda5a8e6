package persistent

import (
	"solraise/services/tips/internal/entity"
	"solraise/services/tips/internal/model"

	"gorm.io/gorm"
)

type TipRepository interface {
	Create(tip *entity.Tip) error
	List() ([]*entity.Tip, error)
}

type tipRepository struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) TipRepository {
	return &tipRepository{db: db}
}

func (r *tipRepository) Create(tip *entity.Tip) error {
	tipModel := ToTipModel(tip)
	if err := r.db.Create(tipModel).Error; err != nil {
		return err
	}
	*tip = *ToTipEntity(tipModel)
	return nil
}

func (r *tipRepository) List() ([]*entity.Tip, error) {
	var tipModels []model.TipModel
	if err := r.db.Order("created_at DESC").Find(&tipModels).Error; err != nil {
		return nil, err
	}

	tips := make([]*entity.Tip, len(tipModels))
	for i := range tipModels {
		tips[i] = ToTipEntity(&tipModels[i])
	}
	return tips, nil
}
