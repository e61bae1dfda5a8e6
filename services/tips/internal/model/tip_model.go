package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TipModel struct {
	ID                 string    `gorm:"type:uuid;primary_key" json:"id"`
	Sender             string    `gorm:"type:varchar(64);not null;index" json:"sender"`
	Recipient          string    `gorm:"type:varchar(64);not null;index" json:"recipient"`
	RecipientUsername  string    `gorm:"type:varchar(30)" json:"recipient_username"`
	Amount             float64   `gorm:"not null" json:"amount"`
	Message            string    `gorm:"type:varchar(280)" json:"message"`
	Signature          string    `gorm:"type:varchar(128);not null" json:"signature"`
	RewardPointsEarned int64     `gorm:"not null" json:"reward_points_earned"`
	CreatedAt          time.Time `json:"created_at"`
}

func (TipModel) TableName() string {
	return "tips"
}

func (t *TipModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// UserModel carries only the columns the tips service touches when
// applying sender and recipient stats.
type UserModel struct {
	Address          string  `gorm:"primary_key;type:varchar(64)" json:"address"`
	TotalSent        float64 `json:"total_sent"`
	TotalReceived    float64 `json:"total_received"`
	TipCountSent     int     `json:"tip_count_sent"`
	TipCountReceived int     `json:"tip_count_received"`
	RewardPoints     int64   `json:"reward_points"`
}

func (UserModel) TableName() string {
	return "users"
}
