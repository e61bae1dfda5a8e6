package entity

import "time"

// User is a registered wallet profile. The wallet address is the identity
// key; transfers may reference addresses that never registered, so a User
// row is optional for any given address.
type User struct {
	Address          string    `json:"address"`
	Username         string    `json:"username"`
	DisplayName      string    `json:"display_name"`
	Bio              string    `json:"bio"`
	AvatarURL        string    `json:"avatar_url,omitempty"`
	TotalReceived    float64   `json:"total_received"`
	TotalSent        float64   `json:"total_sent"`
	TotalDonated     float64   `json:"total_donated"`
	RewardPoints     int64     `json:"reward_points"`
	TipCountReceived int       `json:"tip_count_received"`
	TipCountSent     int       `json:"tip_count_sent"`
	DonationCount    int       `json:"donation_count"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
