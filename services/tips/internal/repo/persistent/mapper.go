package persistent

import (
	"solraise/services/tips/internal/entity"
	"solraise/services/tips/internal/model"
)

func ToTipEntity(m *model.TipModel) *entity.Tip {
	if m == nil {
		return nil
	}

	return &entity.Tip{
		ID:                 m.ID,
		Sender:             m.Sender,
		Recipient:          m.Recipient,
		RecipientUsername:  m.RecipientUsername,
		Amount:             m.Amount,
		Message:            m.Message,
		Signature:          m.Signature,
		RewardPointsEarned: m.RewardPointsEarned,
		Timestamp:          m.CreatedAt,
	}
}

func ToTipModel(e *entity.Tip) *model.TipModel {
	if e == nil {
		return nil
	}

	return &model.TipModel{
		ID:                 e.ID,
		Sender:             e.Sender,
		Recipient:          e.Recipient,
		RecipientUsername:  e.RecipientUsername,
		Amount:             e.Amount,
		Message:            e.Message,
		Signature:          e.Signature,
		RewardPointsEarned: e.RewardPointsEarned,
		CreatedAt:          e.Timestamp,
	}
}
