package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PoolModel struct {
	ID           string  `gorm:"primary_key;type:varchar(50)" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `gorm:"type:text" json:"description"`
	TotalDonated float64 `gorm:"default:0" json:"total_donated"`
	DonorCount   int     `gorm:"default:0" json:"donor_count"`
}

func (PoolModel) TableName() string {
	return "pools"
}

type PoolDonationModel struct {
	ID                 string    `gorm:"type:uuid;primary_key" json:"id"`
	Donor              string    `gorm:"type:varchar(64);not null;index:idx_pool_donor" json:"donor"`
	PoolID             string    `gorm:"type:varchar(50);not null;index:idx_pool_donor" json:"pool_id"`
	PoolName           string    `gorm:"not null" json:"pool_name"`
	Amount             float64   `gorm:"not null" json:"amount"`
	Signature          string    `gorm:"type:varchar(128);not null" json:"signature"`
	RewardPointsEarned int64     `gorm:"not null" json:"reward_points_earned"`
	CreatedAt          time.Time `json:"created_at"`
}

func (PoolDonationModel) TableName() string {
	return "pool_donations"
}

func (d *PoolDonationModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
