package rewards

import "math"

// Platform reward configuration. Every activity on the platform (direct
// donations, pool contributions, tips) earns points at the same base rate.
const (
	// PointsPerSOL is the base conversion rate: 1 SOL = 1000 points.
	PointsPerSOL = 1000

	// PointsToTokenRatio is the planned conversion rate into the future
	// platform token: 100 points = 1 token.
	PointsToTokenRatio = 100

	// WelcomeBonus is credited once at registration.
	WelcomeBonus = 50
)

// Points converts a SOL amount into reward points, rounding down.
// 1 SOL = 1000 points, 0.01 SOL = 10 points, 0.1 SOL = 100 points.
func Points(amount float64) int64 {
	if amount <= 0 {
		return 0
	}
	return int64(math.Floor(amount * PointsPerSOL))
}
