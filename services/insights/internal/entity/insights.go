package entity

import "time"

type ActivityType string

const (
	ActivityDonation     ActivityType = "donation"
	ActivityPoolDonation ActivityType = "pool_donation"
	ActivityTip          ActivityType = "tip"
)

// Activity is the common shape every transfer record is mapped into for
// the public feed. Type-specific fields are omitted when empty.
type Activity struct {
	ID                string       `json:"id"`
	Type              ActivityType `json:"type"`
	Actor             string       `json:"actor"`
	Username          string       `json:"username"`
	Amount            float64      `json:"amount"`
	Signature         string       `json:"signature"`
	Timestamp         time.Time    `json:"timestamp"`
	PoolName          string       `json:"pool_name,omitempty"`
	Recipient         string       `json:"recipient,omitempty"`
	RecipientUsername string       `json:"recipient_username,omitempty"`
	Message           string       `json:"message,omitempty"`
}

type LeaderboardEntry struct {
	Rank             int     `json:"rank"`
	Address          string  `json:"address"`
	Username         string  `json:"username"`
	DisplayName      string  `json:"display_name"`
	TotalContributed float64 `json:"total_contributed"`
	RewardPoints     int64   `json:"reward_points"`
	ActivityCount    int     `json:"activity_count"`
}

type Leaderboard struct {
	TopDonors   []*LeaderboardEntry `json:"top_donors"`
	TopEarners  []*LeaderboardEntry `json:"top_earners"`
	MostActive  []*LeaderboardEntry `json:"most_active"`
	TotalUsers  int                 `json:"total_users"`
	ActiveUsers int                 `json:"active_users"`
	TotalVolume float64             `json:"total_volume"`
}

type PlatformStats struct {
	TotalDonations          float64 `json:"total_donations"`
	TotalDonors             int     `json:"total_donors"`
	TotalRewardsDistributed int64   `json:"total_rewards_distributed"`
	PendingDistribution     float64 `json:"pending_distribution"`
}

// User carries the profile and running totals the aggregation views read.
type User struct {
	Address          string  `json:"address"`
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

type DonationRecord struct {
	ID                 string    `json:"id"`
	Donor              string    `json:"donor"`
	Amount             float64   `json:"amount"`
	Signature          string    `json:"signature"`
	RewardPointsEarned int64     `json:"reward_points_earned"`
	Status             string    `json:"status"`
	Timestamp          time.Time `json:"timestamp"`
}

type PoolDonationRecord struct {
	ID        string    `json:"id"`
	Donor     string    `json:"donor"`
	PoolName  string    `json:"pool_name"`
	Amount    float64   `json:"amount"`
	Signature string    `json:"signature"`
	Timestamp time.Time `json:"timestamp"`
}

type TipRecord struct {
	ID                string    `json:"id"`
	Sender            string    `json:"sender"`
	Recipient         string    `json:"recipient"`
	RecipientUsername string    `json:"recipient_username"`
	Amount            float64   `json:"amount"`
	Message           string    `json:"message"`
	Signature         string    `json:"signature"`
	Timestamp         time.Time `json:"timestamp"`
}
