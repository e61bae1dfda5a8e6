package model

import "time"

// Read-only view models over the tables owned by the registry, donations
// and tips services. The insights service never writes.

type UserModel struct {
	Address          string  `gorm:"primary_key;type:varchar(64)" json:"address"`
	Username         string  `json:"username"`
	DisplayName      string  `json:"display_name"`
	TotalReceived    float64 `json:"total_received"`
	TotalSent        float64 `json:"total_sent"`
	TotalDonated     float64 `json:"total_donated"`
	RewardPoints     int64   `json:"reward_points"`
	TipCountReceived int     `json:"tip_count_received"`
	TipCountSent     int     `json:"tip_count_sent"`
	DonationCount    int     `json:"donation_count"`
	IsActive         bool    `json:"is_active"`
}

func (UserModel) TableName() string {
	return "users"
}

type DonationModel struct {
	ID                 string    `gorm:"type:uuid;primary_key" json:"id"`
	Donor              string    `json:"donor"`
	Amount             float64   `json:"amount"`
	Signature          string    `json:"signature"`
	RewardPointsEarned int64     `json:"reward_points_earned"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

func (DonationModel) TableName() string {
	return "donations"
}

type PoolDonationModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Donor     string    `json:"donor"`
	PoolName  string    `json:"pool_name"`
	Amount    float64   `json:"amount"`
	Signature string    `json:"signature"`
	CreatedAt time.Time `json:"created_at"`
}

func (PoolDonationModel) TableName() string {
	return "pool_donations"
}

type TipModel struct {
	ID                string    `gorm:"type:uuid;primary_key" json:"id"`
	Sender            string    `json:"sender"`
	Recipient         string    `json:"recipient"`
	RecipientUsername string    `json:"recipient_username"`
	Amount            float64   `json:"amount"`
	Message           string    `json:"message"`
	Signature         string    `json:"signature"`
	CreatedAt         time.Time `json:"created_at"`
}

func (TipModel) TableName() string {
	return "tips"
}
