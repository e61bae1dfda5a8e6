package entity

import "time"

type DonationType string

const (
	DonationTypeOneTap DonationType = "one-tap"
	DonationTypeCustom DonationType = "custom"
)

// DonationStatus tracks the treasury's later redistribution of the funds
// to verified causes. It is updated by a back-office process, never by the
// recording API.
type DonationStatus string

const (
	StatusPending     DonationStatus = "pending"
	StatusDistributed DonationStatus = "distributed"
	StatusCompleted   DonationStatus = "completed"
)

// Donation is a confirmed on-chain transfer from a donor wallet to the
// platform treasury. The signature is the transaction id reported by the
// caller; it is echoed back, not re-verified here.
type Donation struct {
	ID                 string         `json:"id"`
	Donor              string         `json:"donor"`
	Amount             float64        `json:"amount"`
	Signature          string         `json:"signature"`
	Type               DonationType   `json:"type"`
	RewardPointsEarned int64          `json:"reward_points_earned"`
	Status             DonationStatus `json:"status"`
	Timestamp          time.Time      `json:"timestamp"`
}

// PoolDonation is a confirmed transfer into a named cause pool. PoolName
// is a display snapshot taken at write time and is not refreshed if the
// pool is later renamed.
type PoolDonation struct {
	ID                 string    `json:"id"`
	Donor              string    `json:"donor"`
	PoolID             string    `json:"pool_id"`
	PoolName           string    `json:"pool_name"`
	Amount             float64   `json:"amount"`
	Signature          string    `json:"signature"`
	RewardPointsEarned int64     `json:"reward_points_earned"`
	Timestamp          time.Time `json:"timestamp"`
}

type Pool struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	TotalDonated float64 `json:"total_donated"`
	DonorCount   int     `json:"donor_count"`
}

// DonationStats is derived from a full scan of the donation records.
type DonationStats struct {
	TotalDonations          float64 `json:"total_donations"`
	TotalDonors             int     `json:"total_donors"`
	TotalRewardsDistributed int64   `json:"total_rewards_distributed"`
	PendingDistribution     float64 `json:"pending_distribution"`
}

type PoolDonationStats struct {
	TotalDonations          float64         `json:"total_donations"`
	TotalDonors             int             `json:"total_donors"`
	TotalRewardsDistributed int64           `json:"total_rewards_distributed"`
	RecentDonations         []*PoolDonation `json:"recent_donations"`
}
