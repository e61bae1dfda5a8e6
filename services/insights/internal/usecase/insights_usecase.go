package usecase

import (
	"fmt"
	"sort"

	"solraise/pkg/logger"
	"solraise/services/insights/internal/entity"
	"solraise/services/insights/internal/repo/persistent"
)

const (
	activityFeedLimit = 20
	rankingLimit      = 10
)

type InsightsUseCase interface {
	ActivityFeed() ([]*entity.Activity, error)
	Leaderboard() (*entity.Leaderboard, error)
	PlatformStats() (*entity.PlatformStats, error)
}

type insightsUseCase struct {
	repo   persistent.InsightsRepository
	logger *logger.Logger
}

func NewInsightsUseCase(repo persistent.InsightsRepository, logger *logger.Logger) InsightsUseCase {
	return &insightsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// ActivityFeed merges donations, pool donations and tips into a single
// feed sorted by timestamp descending (ties broken by id descending) and
// truncated to the most recent 20 entries. Actor usernames are resolved
// with one batch lookup; unregistered actors fall back to a masked
// address.
func (uc *insightsUseCase) ActivityFeed() ([]*entity.Activity, error) {
	donations, err := uc.repo.ListDonations()
	if err != nil {
		uc.logger.Error("Failed to list donations for activity feed: %v", err)
		return nil, fmt.Errorf("failed to build activity feed")
	}

	poolDonations, err := uc.repo.ListPoolDonations()
	if err != nil {
		uc.logger.Error("Failed to list pool donations for activity feed: %v", err)
		return nil, fmt.Errorf("failed to build activity feed")
	}

	tips, err := uc.repo.ListTips()
	if err != nil {
		uc.logger.Error("Failed to list tips for activity feed: %v", err)
		return nil, fmt.Errorf("failed to build activity feed")
	}

	activities := make([]*entity.Activity, 0, len(donations)+len(poolDonations)+len(tips))

	for _, d := range donations {
		activities = append(activities, &entity.Activity{
			ID:        d.ID,
			Type:      entity.ActivityDonation,
			Actor:     d.Donor,
			Amount:    d.Amount,
			Signature: d.Signature,
			Timestamp: d.Timestamp,
		})
	}

	for _, d := range poolDonations {
		activities = append(activities, &entity.Activity{
			ID:        d.ID,
			Type:      entity.ActivityPoolDonation,
			Actor:     d.Donor,
			Amount:    d.Amount,
			Signature: d.Signature,
			Timestamp: d.Timestamp,
			PoolName:  d.PoolName,
		})
	}

	for _, t := range tips {
		activities = append(activities, &entity.Activity{
			ID:                t.ID,
			Type:              entity.ActivityTip,
			Actor:             t.Sender,
			Amount:            t.Amount,
			Signature:         t.Signature,
			Timestamp:         t.Timestamp,
			Recipient:         t.Recipient,
			RecipientUsername: t.RecipientUsername,
			Message:           t.Message,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		if activities[i].Timestamp.Equal(activities[j].Timestamp) {
			return activities[i].ID > activities[j].ID
		}
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})

	if len(activities) > activityFeedLimit {
		activities = activities[:activityFeedLimit]
	}

	addresses := make([]string, 0, len(activities))
	seen := make(map[string]bool, len(activities))
	for _, a := range activities {
		if !seen[a.Actor] {
			seen[a.Actor] = true
			addresses = append(addresses, a.Actor)
		}
	}

	usernames, err := uc.repo.UsernamesByAddress(addresses)
	if err != nil {
		uc.logger.Error("Failed to resolve usernames for activity feed: %v", err)
		return nil, fmt.Errorf("failed to build activity feed")
	}

	for _, a := range activities {
		if username, ok := usernames[a.Actor]; ok {
			a.Username = username
		} else {
			a.Username = maskAddress(a.Actor)
		}
	}

	return activities, nil
}

// Leaderboard ranks every registered user three ways from the running
// totals on the user row: total contributed (donations plus tips sent,
// zero contributors excluded), reward points (everyone, zero included)
// and activity count. Ties are broken by username ascending.
func (uc *insightsUseCase) Leaderboard() (*entity.Leaderboard, error) {
	users, err := uc.repo.ListUsers()
	if err != nil {
		uc.logger.Error("Failed to list users for leaderboard: %v", err)
		return nil, fmt.Errorf("failed to build leaderboard")
	}

	entries := make([]*entity.LeaderboardEntry, len(users))
	board := &entity.Leaderboard{TotalUsers: len(users)}

	for i, u := range users {
		entries[i] = &entity.LeaderboardEntry{
			Address:          maskAddress(u.Address),
			Username:         u.Username,
			DisplayName:      u.DisplayName,
			TotalContributed: u.TotalDonated + u.TotalSent,
			RewardPoints:     u.RewardPoints,
			ActivityCount:    u.DonationCount + u.TipCountSent,
		}
		board.TotalVolume += entries[i].TotalContributed
		if u.IsActive {
			board.ActiveUsers++
		}
	}

	donors := make([]*entity.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.TotalContributed > 0 {
			donors = append(donors, e)
		}
	}

	board.TopDonors = topN(donors, func(a, b *entity.LeaderboardEntry) bool {
		return a.TotalContributed > b.TotalContributed
	})
	board.TopEarners = topN(entries, func(a, b *entity.LeaderboardEntry) bool {
		return a.RewardPoints > b.RewardPoints
	})
	board.MostActive = topN(entries, func(a, b *entity.LeaderboardEntry) bool {
		return a.ActivityCount > b.ActivityCount
	})

	return board, nil
}

// PlatformStats rolls up the donation tables: total volume across both
// donation kinds, distinct donor addresses, reward points issued for
// direct donations, and the amount still awaiting distribution.
func (uc *insightsUseCase) PlatformStats() (*entity.PlatformStats, error) {
	donations, err := uc.repo.ListDonations()
	if err != nil {
		uc.logger.Error("Failed to list donations for platform stats: %v", err)
		return nil, fmt.Errorf("failed to compute platform stats")
	}

	poolDonations, err := uc.repo.ListPoolDonations()
	if err != nil {
		uc.logger.Error("Failed to list pool donations for platform stats: %v", err)
		return nil, fmt.Errorf("failed to compute platform stats")
	}

	stats := &entity.PlatformStats{}
	donors := make(map[string]bool)

	for _, d := range donations {
		stats.TotalDonations += d.Amount
		stats.TotalRewardsDistributed += d.RewardPointsEarned
		donors[d.Donor] = true
		if d.Status == "pending" {
			stats.PendingDistribution += d.Amount
		}
	}

	for _, d := range poolDonations {
		stats.TotalDonations += d.Amount
		donors[d.Donor] = true
	}

	stats.TotalDonors = len(donors)
	return stats, nil
}

// topN returns the highest-ranked entries in a fresh slice, leaving the
// input order untouched so the three rankings do not disturb each other.
func topN(entries []*entity.LeaderboardEntry, higher func(a, b *entity.LeaderboardEntry) bool) []*entity.LeaderboardEntry {
	ranked := make([]*entity.LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.Slice(ranked, func(i, j int) bool {
		if !higher(ranked[i], ranked[j]) && !higher(ranked[j], ranked[i]) {
			return ranked[i].Username < ranked[j].Username
		}
		return higher(ranked[i], ranked[j])
	})

	if len(ranked) > rankingLimit {
		ranked = ranked[:rankingLimit]
	}

	result := make([]*entity.LeaderboardEntry, len(ranked))
	for i, e := range ranked {
		entry := *e
		entry.Rank = i + 1
		result[i] = &entry
	}
	return result
}

func maskAddress(address string) string {
	if len(address) <= 8 {
		return address
	}
	return address[:4] + "..." + address[len(address)-4:]
}
