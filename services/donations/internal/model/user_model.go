package model

// UserModel carries only the columns the donations service touches when
// applying donor stats. The registry service owns the full schema.
type UserModel struct {
	Address       string  `gorm:"primary_key;type:varchar(64)" json:"address"`
	TotalDonated  float64 `json:"total_donated"`
	DonationCount int     `json:"donation_count"`
	RewardPoints  int64   `json:"reward_points"`
}

func (UserModel) TableName() string {
	return "users"
}
