package persistent

import (
	"solraise/services/insights/internal/entity"
	"solraise/services/insights/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		Address:          m.Address,
		Username:         m.Username,
		DisplayName:      m.DisplayName,
		TotalReceived:    m.TotalReceived,
		TotalSent:        m.TotalSent,
		TotalDonated:     m.TotalDonated,
		RewardPoints:     m.RewardPoints,
		TipCountReceived: m.TipCountReceived,
		TipCountSent:     m.TipCountSent,
		DonationCount:    m.DonationCount,
		IsActive:         m.IsActive,
	}
}

func ToDonationEntity(m *model.DonationModel) *entity.DonationRecord {
	if m == nil {
		return nil
	}

	return &entity.DonationRecord{
		ID:                 m.ID,
		Donor:              m.Donor,
		Amount:             m.Amount,
		Signature:          m.Signature,
		RewardPointsEarned: m.RewardPointsEarned,
		Status:             m.Status,
		Timestamp:          m.CreatedAt,
	}
}

func ToPoolDonationEntity(m *model.PoolDonationModel) *entity.PoolDonationRecord {
	if m == nil {
		return nil
	}

	return &entity.PoolDonationRecord{
		ID:        m.ID,
		Donor:     m.Donor,
		PoolName:  m.PoolName,
		Amount:    m.Amount,
		Signature: m.Signature,
		Timestamp: m.CreatedAt,
	}
}

func ToTipEntity(m *model.TipModel) *entity.TipRecord {
	if m == nil {
		return nil
	}

	return &entity.TipRecord{
		ID:                m.ID,
		Sender:            m.Sender,
		Recipient:         m.Recipient,
		RecipientUsername: m.RecipientUsername,
		Amount:            m.Amount,
		Message:           m.Message,
		Signature:         m.Signature,
		Timestamp:         m.CreatedAt,
	}
}
