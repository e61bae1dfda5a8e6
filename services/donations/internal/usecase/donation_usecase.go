package usecase

import (
	"fmt"

	"solraise/pkg/logger"
	"solraise/pkg/metrics"
	"solraise/pkg/queue"
	"solraise/pkg/rewards"
	"solraise/services/donations/internal/entity"
	"solraise/services/donations/internal/repo/persistent"
)

type DonationUseCase interface {
	RecordDonation(donor string, amount float64, signature string, donationType entity.DonationType) (*entity.Donation, error)
	RecordPoolDonation(donor, poolID, poolName string, amount float64, signature string) (*entity.PoolDonation, error)
	ListDonations() ([]*entity.Donation, *entity.DonationStats, error)
	ListPoolDonations() ([]*entity.PoolDonation, *entity.PoolDonationStats, error)
	ListPools() ([]*entity.Pool, error)
}

type donationUseCase struct {
	donationRepo persistent.DonationRepository
	poolRepo     persistent.PoolRepository
	statsRepo    persistent.UserStatsRepository
	queueClient  *queue.Client
	logger       *logger.Logger
}

func NewDonationUseCase(
	donationRepo persistent.DonationRepository,
	poolRepo persistent.PoolRepository,
	statsRepo persistent.UserStatsRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) DonationUseCase {
	return &donationUseCase{
		donationRepo: donationRepo,
		poolRepo:     poolRepo,
		statsRepo:    statsRepo,
		queueClient:  queueClient,
		logger:       logger,
	}
}

// RecordDonation persists a confirmed treasury donation and rolls it into
// the donor's stats. The record is created first; a stats failure after a
// successful create is logged but does not fail the call.
func (uc *donationUseCase) RecordDonation(donor string, amount float64, signature string, donationType entity.DonationType) (*entity.Donation, error) {
	if donationType == "" {
		donationType = entity.DonationTypeOneTap
	}

	points := rewards.Points(amount)

	donation := &entity.Donation{
		Donor:              donor,
		Amount:             amount,
		Signature:          signature,
		Type:               donationType,
		RewardPointsEarned: points,
		Status:             entity.StatusPending,
	}

	if err := uc.donationRepo.Create(donation); err != nil {
		uc.logger.Error("Failed to create donation: %v", err)
		return nil, fmt.Errorf("failed to record donation")
	}

	applied, err := uc.statsRepo.ApplyDonation(donor, amount, points)
	if err != nil {
		uc.logger.Error("Failed to update donor stats for %s: %v", donor, err)
	} else if !applied {
		uc.logger.Info("Donor %s is not registered, skipping stats update", donor)
	}

	metrics.DonationsRecorded.Inc()
	metrics.RewardPointsIssued.Add(float64(points))

	uc.publishEvent(map[string]interface{}{
		"type":      "donation",
		"id":        donation.ID,
		"actor":     donation.Donor,
		"amount":    donation.Amount,
		"signature": donation.Signature,
	})

	return donation, nil
}

// RecordPoolDonation persists a cause pool donation, then updates the
// pool's totals and the donor's stats. Ordering matters: the pool's donor
// count is derived from the pool_donations rows, including the one just
// written.
func (uc *donationUseCase) RecordPoolDonation(donor, poolID, poolName string, amount float64, signature string) (*entity.PoolDonation, error) {
	if poolName == "" {
		poolName = "Unknown Pool"
	}

	points := rewards.Points(amount)

	donation := &entity.PoolDonation{
		Donor:              donor,
		PoolID:             poolID,
		PoolName:           poolName,
		Amount:             amount,
		Signature:          signature,
		RewardPointsEarned: points,
	}

	if err := uc.poolRepo.CreatePoolDonation(donation); err != nil {
		uc.logger.Error("Failed to create pool donation: %v", err)
		return nil, fmt.Errorf("failed to record donation")
	}

	if err := uc.poolRepo.ApplyPoolDonation(poolID, donor, amount); err != nil {
		uc.logger.Error("Failed to update pool %s stats: %v", poolID, err)
	}

	applied, err := uc.statsRepo.ApplyDonation(donor, amount, points)
	if err != nil {
		uc.logger.Error("Failed to update donor stats for %s: %v", donor, err)
	} else if !applied {
		uc.logger.Info("Donor %s is not registered, skipping stats update", donor)
	}

	metrics.PoolDonationsRecorded.Inc()
	metrics.RewardPointsIssued.Add(float64(points))

	uc.publishEvent(map[string]interface{}{
		"type":      "pool_donation",
		"id":        donation.ID,
		"actor":     donation.Donor,
		"pool_id":   donation.PoolID,
		"amount":    donation.Amount,
		"signature": donation.Signature,
	})

	return donation, nil
}

func (uc *donationUseCase) ListDonations() ([]*entity.Donation, *entity.DonationStats, error) {
	donations, err := uc.donationRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list donations: %v", err)
		return nil, nil, fmt.Errorf("failed to list donations: %w", err)
	}

	stats := &entity.DonationStats{}
	donors := make(map[string]struct{})
	for _, d := range donations {
		stats.TotalDonations += d.Amount
		stats.TotalRewardsDistributed += d.RewardPointsEarned
		donors[d.Donor] = struct{}{}
		if d.Status == entity.StatusPending {
			stats.PendingDistribution += d.Amount
		}
	}
	stats.TotalDonors = len(donors)

	return donations, stats, nil
}

func (uc *donationUseCase) ListPoolDonations() ([]*entity.PoolDonation, *entity.PoolDonationStats, error) {
	donations, err := uc.poolRepo.ListPoolDonations()
	if err != nil {
		uc.logger.Error("Failed to list pool donations: %v", err)
		return nil, nil, fmt.Errorf("failed to list pool donations: %w", err)
	}

	stats := &entity.PoolDonationStats{RecentDonations: []*entity.PoolDonation{}}
	donors := make(map[string]struct{})
	for _, d := range donations {
		stats.TotalDonations += d.Amount
		stats.TotalRewardsDistributed += d.RewardPointsEarned
		donors[d.Donor] = struct{}{}
	}
	stats.TotalDonors = len(donors)

	if len(donations) > 10 {
		stats.RecentDonations = donations[:10]
	} else {
		stats.RecentDonations = donations
	}

	return donations, stats, nil
}

func (uc *donationUseCase) ListPools() ([]*entity.Pool, error) {
	pools, err := uc.poolRepo.ListPools()
	if err != nil {
		uc.logger.Error("Failed to list pools: %v", err)
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}
	return pools, nil
}

func (uc *donationUseCase) publishEvent(event map[string]interface{}) {
	if uc.queueClient == nil {
		return
	}
	if err := uc.queueClient.PublishActivityEvent(event); err != nil {
		uc.logger.Error("Failed to publish activity event: %v", err)
	}
}
