package persistent

import (
	"fmt"
	"testing"

	"solraise/services/tips/internal/entity"
	"solraise/services/tips/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.TipModel{}))
	return db
}

func TestApplySenderStats_IncrementsCounters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserStatsRepository(db)

	require.NoError(t, db.Create(&model.UserModel{Address: "addr1", RewardPoints: 50}).Error)

	applied, err := repo.ApplySenderStats("addr1", 0.05, 50)
	require.NoError(t, err)
	assert.True(t, applied)

	var user model.UserModel
	require.NoError(t, db.Where("address = ?", "addr1").First(&user).Error)
	assert.InDelta(t, 0.05, user.TotalSent, 1e-9)
	assert.Equal(t, 1, user.TipCountSent)
	assert.Equal(t, int64(100), user.RewardPoints)
}

func TestApplyRecipientStats_NoPoints(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserStatsRepository(db)

	require.NoError(t, db.Create(&model.UserModel{Address: "addr2", RewardPoints: 50}).Error)

	applied, err := repo.ApplyRecipientStats("addr2", 0.05)
	require.NoError(t, err)
	assert.True(t, applied)

	var user model.UserModel
	require.NoError(t, db.Where("address = ?", "addr2").First(&user).Error)
	assert.InDelta(t, 0.05, user.TotalReceived, 1e-9)
	assert.Equal(t, 1, user.TipCountReceived)
	// Only the sender earns points.
	assert.Equal(t, int64(50), user.RewardPoints)
}

func TestApplyStats_UnregisteredIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserStatsRepository(db)

	applied, err := repo.ApplySenderStats("stranger", 0.05, 50)
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = repo.ApplyRecipientStats("stranger", 0.05)
	require.NoError(t, err)
	assert.False(t, applied)

	var count int64
	db.Model(&model.UserModel{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTipRepository_CreateAssignsID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTipRepository(db)

	tip := &entity.Tip{
		Sender:             "addr1",
		Recipient:          "addr2",
		RecipientUsername:  "bob",
		Amount:             0.05,
		Message:            "great post!",
		Signature:          "sig-1",
		RewardPointsEarned: 50,
	}
	require.NoError(t, repo.Create(tip))

	assert.NotEmpty(t, tip.ID)

	tips, err := repo.List()
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.Equal(t, "bob", tips[0].RecipientUsername)
}
