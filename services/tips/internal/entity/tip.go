package entity

import "time"

// Tip is a confirmed wallet-to-wallet transfer. RecipientUsername is a
// display snapshot taken at write time. Only the sender earns reward
// points; neither address is required to be a registered user.
type Tip struct {
	ID                 string    `json:"id"`
	Sender             string    `json:"sender"`
	Recipient          string    `json:"recipient"`
	RecipientUsername  string    `json:"recipient_username"`
	Amount             float64   `json:"amount"`
	Message            string    `json:"message"`
	Signature          string    `json:"signature"`
	RewardPointsEarned int64     `json:"reward_points_earned"`
	Timestamp          time.Time `json:"timestamp"`
}
