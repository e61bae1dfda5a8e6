package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationModel struct {
	ID                 string    `gorm:"type:uuid;primary_key" json:"id"`
	Donor              string    `gorm:"type:varchar(64);not null;index" json:"donor"`
	Amount             float64   `gorm:"not null" json:"amount"`
	Signature          string    `gorm:"type:varchar(128);not null" json:"signature"`
	Type               string    `gorm:"type:varchar(20);default:'one-tap'" json:"type"`
	RewardPointsEarned int64     `gorm:"not null" json:"reward_points_earned"`
	Status             string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

func (DonationModel) TableName() string {
	return "donations"
}

func (d *DonationModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
