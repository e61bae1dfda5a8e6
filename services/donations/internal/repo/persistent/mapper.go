package persistent

import (
	"solraise/services/donations/internal/entity"
	"solraise/services/donations/internal/model"
)

func ToDonationEntity(m *model.DonationModel) *entity.Donation {
	if m == nil {
		return nil
	}

	return &entity.Donation{
		ID:                 m.ID,
		Donor:              m.Donor,
		Amount:             m.Amount,
		Signature:          m.Signature,
		Type:               entity.DonationType(m.Type),
		RewardPointsEarned: m.RewardPointsEarned,
		Status:             entity.DonationStatus(m.Status),
		Timestamp:          m.CreatedAt,
	}
}

func ToDonationModel(e *entity.Donation) *model.DonationModel {
	if e == nil {
		return nil
	}

	return &model.DonationModel{
		ID:                 e.ID,
		Donor:              e.Donor,
		Amount:             e.Amount,
		Signature:          e.Signature,
		Type:               string(e.Type),
		RewardPointsEarned: e.RewardPointsEarned,
		Status:             string(e.Status),
		CreatedAt:          e.Timestamp,
	}
}

func ToPoolDonationEntity(m *model.PoolDonationModel) *entity.PoolDonation {
	if m == nil {
		return nil
	}

	return &entity.PoolDonation{
		ID:                 m.ID,
		Donor:              m.Donor,
		PoolID:             m.PoolID,
		PoolName:           m.PoolName,
		Amount:             m.Amount,
		Signature:          m.Signature,
		RewardPointsEarned: m.RewardPointsEarned,
		Timestamp:          m.CreatedAt,
	}
}

func ToPoolDonationModel(e *entity.PoolDonation) *model.PoolDonationModel {
	if e == nil {
		return nil
	}

	return &model.PoolDonationModel{
		ID:                 e.ID,
		Donor:              e.Donor,
		PoolID:             e.PoolID,
		PoolName:           e.PoolName,
		Amount:             e.Amount,
		Signature:          e.Signature,
		RewardPointsEarned: e.RewardPointsEarned,
		CreatedAt:          e.Timestamp,
	}
}

func ToPoolEntity(m *model.PoolModel) *entity.Pool {
	if m == nil {
		return nil
	}

	return &entity.Pool{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		TotalDonated: m.TotalDonated,
		DonorCount:   m.DonorCount,
	}
}
