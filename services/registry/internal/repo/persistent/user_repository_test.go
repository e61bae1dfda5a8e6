package persistent

import (
	"fmt"
	"testing"
	"time"

	"solraise/services/registry/internal/entity"
	"solraise/services/registry/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}))
	return db
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &entity.User{
		Address:      "addr1",
		Username:     "alice",
		DisplayName:  "Alice",
		Bio:          "hello",
		RewardPoints: 50,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(user))
	assert.False(t, user.CreatedAt.IsZero())

	byAddress, err := repo.GetByAddress("addr1")
	require.NoError(t, err)
	assert.Equal(t, "alice", byAddress.Username)
	assert.Equal(t, int64(50), byAddress.RewardPoints)

	byUsername, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "addr1", byUsername.Address)
}

func TestUserRepository_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByAddress("nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.GetByUsername("nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&entity.User{Address: "addr1", Username: "alice", DisplayName: "Alice", IsActive: true}))

	err := repo.Create(&entity.User{Address: "addr2", Username: "alice", DisplayName: "Other Alice", IsActive: true})
	assert.Error(t, err)
}

func TestUserRepository_ListActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	require.NoError(t, db.Create(&model.UserModel{Address: "addr1", Username: "alice", DisplayName: "Alice", IsActive: true, CreatedAt: now.Add(-2 * time.Hour)}).Error)
	require.NoError(t, db.Create(&model.UserModel{Address: "addr2", Username: "bob", DisplayName: "Bob", IsActive: true, CreatedAt: now.Add(-1 * time.Hour)}).Error)
	require.NoError(t, db.Create(&model.UserModel{Address: "addr3", Username: "carol", DisplayName: "Carol", IsActive: false, CreatedAt: now}).Error)

	users, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, users, 2)
	// Newest first, deactivated profiles excluded.
	assert.Equal(t, "bob", users[0].Username)
	assert.Equal(t, "alice", users[1].Username)
}

func TestUserRepository_UpdatePersistsAvatar(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &entity.User{Address: "addr1", Username: "alice", DisplayName: "Alice", IsActive: true}
	require.NoError(t, repo.Create(user))

	user.AvatarURL = "https://cdn.example.com/avatars/alice.png"
	require.NoError(t, repo.Update(user))

	reloaded, err := repo.GetByAddress("addr1")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/alice.png", reloaded.AvatarURL)
}
