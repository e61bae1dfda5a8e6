package persistent

import (
	"fmt"
	"testing"

	"solraise/services/donations/internal/entity"
	"solraise/services/donations/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.DonationModel{}, &model.PoolModel{}, &model.PoolDonationModel{}))
	return db
}

func TestApplyDonation_IncrementsCounters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserStatsRepository(db)

	require.NoError(t, db.Create(&model.UserModel{Address: "addr1", RewardPoints: 50}).Error)

	applied, err := repo.ApplyDonation("addr1", 0.01, 10)
	require.NoError(t, err)
	assert.True(t, applied)

	var user model.UserModel
	require.NoError(t, db.Where("address = ?", "addr1").First(&user).Error)
	assert.InDelta(t, 0.01, user.TotalDonated, 1e-9)
	assert.Equal(t, 1, user.DonationCount)
	assert.Equal(t, int64(60), user.RewardPoints)
}

func TestApplyDonation_Accumulates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserStatsRepository(db)

	require.NoError(t, db.Create(&model.UserModel{Address: "addr1", RewardPoints: 50}).Error)

	_, err := repo.ApplyDonation("addr1", 0.1, 100)
	require.NoError(t, err)
	_, err = repo.ApplyDonation("addr1", 0.2, 200)
	require.NoError(t, err)

	var user model.UserModel
	require.NoError(t, db.Where("address = ?", "addr1").First(&user).Error)
	assert.InDelta(t, 0.3, user.TotalDonated, 1e-9)
	assert.Equal(t, 2, user.DonationCount)
	assert.Equal(t, int64(350), user.RewardPoints)
}

func TestApplyDonation_UnregisteredIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserStatsRepository(db)

	applied, err := repo.ApplyDonation("stranger", 0.5, 500)
	require.NoError(t, err)
	assert.False(t, applied)

	// No user row is ever created implicitly.
	var count int64
	db.Model(&model.UserModel{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestApplyPoolDonation_DistinctDonorCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPoolRepository(db)

	require.NoError(t, db.Create(&model.PoolModel{ID: "medical", Name: "International Medical Relief"}).Error)

	first := &entity.PoolDonation{Donor: "addr1", PoolID: "medical", PoolName: "International Medical Relief", Amount: 0.1, Signature: "sig-1"}
	require.NoError(t, repo.CreatePoolDonation(first))
	require.NoError(t, repo.ApplyPoolDonation("medical", "addr1", 0.1))

	second := &entity.PoolDonation{Donor: "addr1", PoolID: "medical", PoolName: "International Medical Relief", Amount: 0.2, Signature: "sig-2"}
	require.NoError(t, repo.CreatePoolDonation(second))
	require.NoError(t, repo.ApplyPoolDonation("medical", "addr1", 0.2))

	pool, err := repo.GetPoolByID("medical")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, pool.TotalDonated, 1e-9)
	assert.Equal(t, 1, pool.DonorCount)

	third := &entity.PoolDonation{Donor: "addr2", PoolID: "medical", PoolName: "International Medical Relief", Amount: 0.05, Signature: "sig-3"}
	require.NoError(t, repo.CreatePoolDonation(third))
	require.NoError(t, repo.ApplyPoolDonation("medical", "addr2", 0.05))

	pool, err = repo.GetPoolByID("medical")
	require.NoError(t, err)
	assert.InDelta(t, 0.35, pool.TotalDonated, 1e-9)
	assert.Equal(t, 2, pool.DonorCount)
}

func TestApplyPoolDonation_MissingPool(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPoolRepository(db)

	err := repo.ApplyPoolDonation("nonexistent", "addr1", 0.1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDonationRepository_CreateAssignsID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDonationRepository(db)

	donation := &entity.Donation{
		Donor:              "addr1",
		Amount:             0.01,
		Signature:          "sig-1",
		Type:               entity.DonationTypeOneTap,
		RewardPointsEarned: 10,
		Status:             entity.StatusPending,
	}
	require.NoError(t, repo.Create(donation))

	assert.NotEmpty(t, donation.ID)
	assert.False(t, donation.Timestamp.IsZero())

	donations, err := repo.List()
	require.NoError(t, err)
	require.Len(t, donations, 1)
	assert.Equal(t, donation.ID, donations[0].ID)
}
