package usecase

import (
	"fmt"

	"solraise/pkg/logger"
	"solraise/pkg/metrics"
	"solraise/pkg/queue"
	"solraise/pkg/rewards"
	"solraise/services/tips/internal/entity"
	"solraise/services/tips/internal/repo/persistent"
)

type TipUseCase interface {
	RecordTip(sender, recipient, recipientUsername string, amount float64, message, signature string) (*entity.Tip, error)
	ListTips() ([]*entity.Tip, float64, error)
}

type tipUseCase struct {
	tipRepo     persistent.TipRepository
	statsRepo   persistent.UserStatsRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewTipUseCase(
	tipRepo persistent.TipRepository,
	statsRepo persistent.UserStatsRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) TipUseCase {
	return &tipUseCase{
		tipRepo:     tipRepo,
		statsRepo:   statsRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

// RecordTip persists a confirmed peer tip, then updates sender and
// recipient stats. The record is created first; stats failures after a
// successful create are logged but do not fail the call. Either side may
// be an unregistered address, in which case its stats update is a no-op.
func (uc *tipUseCase) RecordTip(sender, recipient, recipientUsername string, amount float64, message, signature string) (*entity.Tip, error) {
	if recipientUsername == "" {
		recipientUsername = "Unknown"
	}

	points := rewards.Points(amount)

	tip := &entity.Tip{
		Sender:             sender,
		Recipient:          recipient,
		RecipientUsername:  recipientUsername,
		Amount:             amount,
		Message:            message,
		Signature:          signature,
		RewardPointsEarned: points,
	}

	if err := uc.tipRepo.Create(tip); err != nil {
		uc.logger.Error("Failed to create tip: %v", err)
		return nil, fmt.Errorf("failed to record tip")
	}

	applied, err := uc.statsRepo.ApplySenderStats(sender, amount, points)
	if err != nil {
		uc.logger.Error("Failed to update sender stats for %s: %v", sender, err)
	} else if !applied {
		uc.logger.Info("Sender %s is not registered, skipping stats update", sender)
	}

	applied, err = uc.statsRepo.ApplyRecipientStats(recipient, amount)
	if err != nil {
		uc.logger.Error("Failed to update recipient stats for %s: %v", recipient, err)
	} else if !applied {
		uc.logger.Info("Recipient %s is not registered, skipping stats update", recipient)
	}

	metrics.TipsRecorded.Inc()
	metrics.RewardPointsIssued.Add(float64(points))

	if uc.queueClient != nil {
		event := map[string]interface{}{
			"type":      "tip",
			"id":        tip.ID,
			"actor":     tip.Sender,
			"recipient": tip.Recipient,
			"amount":    tip.Amount,
			"signature": tip.Signature,
		}
		if err := uc.queueClient.PublishActivityEvent(event); err != nil {
			uc.logger.Error("Failed to publish activity event: %v", err)
		}
	}

	return tip, nil
}

func (uc *tipUseCase) ListTips() ([]*entity.Tip, float64, error) {
	tips, err := uc.tipRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list tips: %v", err)
		return nil, 0, fmt.Errorf("failed to list tips: %w", err)
	}

	total := float64(0)
	for _, t := range tips {
		total += t.Amount
	}

	return tips, total, nil
}
