package persistent

import (
	"fmt"
	"testing"

	"solraise/services/insights/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.DonationModel{}, &model.PoolDonationModel{}, &model.TipModel{}))
	return db
}

func TestListTransferRecords(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInsightsRepository(db)

	require.NoError(t, db.Create(&model.DonationModel{ID: uuid.NewString(), Donor: "addr1", Amount: 1.0, Signature: "sig-1", RewardPointsEarned: 1000, Status: "pending"}).Error)
	require.NoError(t, db.Create(&model.PoolDonationModel{ID: uuid.NewString(), Donor: "addr2", PoolName: "Global Education Fund", Amount: 0.5, Signature: "sig-2"}).Error)
	require.NoError(t, db.Create(&model.TipModel{ID: uuid.NewString(), Sender: "addr1", Recipient: "addr2", Amount: 0.05, Signature: "sig-3"}).Error)

	donations, err := repo.ListDonations()
	require.NoError(t, err)
	assert.Len(t, donations, 1)
	assert.Equal(t, "pending", donations[0].Status)

	poolDonations, err := repo.ListPoolDonations()
	require.NoError(t, err)
	assert.Len(t, poolDonations, 1)
	assert.Equal(t, "Global Education Fund", poolDonations[0].PoolName)

	tips, err := repo.ListTips()
	require.NoError(t, err)
	assert.Len(t, tips, 1)
	assert.Equal(t, "addr2", tips[0].Recipient)
}

func TestUsernamesByAddress(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInsightsRepository(db)

	require.NoError(t, db.Create(&model.UserModel{Address: "addr1", Username: "alice", IsActive: true}).Error)
	require.NoError(t, db.Create(&model.UserModel{Address: "addr2", Username: "bob", IsActive: true}).Error)

	usernames, err := repo.UsernamesByAddress([]string{"addr1", "addr2", "stranger"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"addr1": "alice", "addr2": "bob"}, usernames)
}

func TestUsernamesByAddress_EmptyInput(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInsightsRepository(db)

	usernames, err := repo.UsernamesByAddress(nil)
	require.NoError(t, err)
	assert.Empty(t, usernames)
}
