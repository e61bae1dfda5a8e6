package persistent

import (
	"solraise/services/registry/internal/entity"
	"solraise/services/registry/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		Address:          m.Address,
		Username:         m.Username,
		DisplayName:      m.DisplayName,
		Bio:              m.Bio,
		AvatarURL:        m.AvatarURL,
		TotalReceived:    m.TotalReceived,
		TotalSent:        m.TotalSent,
		TotalDonated:     m.TotalDonated,
		RewardPoints:     m.RewardPoints,
		TipCountReceived: m.TipCountReceived,
		TipCountSent:     m.TipCountSent,
		DonationCount:    m.DonationCount,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		Address:          e.Address,
		Username:         e.Username,
		DisplayName:      e.DisplayName,
		Bio:              e.Bio,
		AvatarURL:        e.AvatarURL,
		TotalReceived:    e.TotalReceived,
		TotalSent:        e.TotalSent,
		TotalDonated:     e.TotalDonated,
		RewardPoints:     e.RewardPoints,
		TipCountReceived: e.TipCountReceived,
		TipCountSent:     e.TipCountSent,
		DonationCount:    e.DonationCount,
		IsActive:         e.IsActive,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
