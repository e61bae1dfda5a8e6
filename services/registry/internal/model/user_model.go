package model

import (
	"time"

	"gorm.io/gorm"
)

type UserModel struct {
	Address          string         `gorm:"primary_key;type:varchar(64)" json:"address"`
	Username         string         `gorm:"uniqueIndex;not null;type:varchar(30)" json:"username"`
	DisplayName      string         `gorm:"not null" json:"display_name"`
	Bio              string         `gorm:"type:text" json:"bio"`
	AvatarURL        string         `gorm:"type:varchar(500)" json:"avatar_url"`
	TotalReceived    float64        `gorm:"default:0" json:"total_received"`
	TotalSent        float64        `gorm:"default:0" json:"total_sent"`
	TotalDonated     float64        `gorm:"default:0" json:"total_donated"`
	RewardPoints     int64          `gorm:"default:0" json:"reward_points"`
	TipCountReceived int            `gorm:"default:0" json:"tip_count_received"`
	TipCountSent     int            `gorm:"default:0" json:"tip_count_sent"`
	DonationCount    int            `gorm:"default:0" json:"donation_count"`
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
