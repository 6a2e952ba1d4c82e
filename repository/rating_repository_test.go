package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gaurisonawane07/StoreRater/entity"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Store{}, &entity.Rating{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUserAndStore(t *testing.T, db *gorm.DB) (uint, uint) {
	user := entity.User{Name: "Rating Test User Twenty Chars", Email: "rater@example.com", Password: "x", Role: entity.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	store := entity.Store{Name: "Corner Shop"}
	require.NoError(t, db.Create(&store).Error)
	return user.ID, store.ID
}

func TestUpsertKeepsSingleRowPerUserAndStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	userID, storeID := seedUserAndStore(t, db)

	require.NoError(t, repo.Upsert(&entity.Rating{UserID: userID, StoreID: storeID, Rating: 5}))
	require.NoError(t, repo.Upsert(&entity.Rating{UserID: userID, StoreID: storeID, Rating: 3}))

	var count int64
	db.Model(&entity.Rating{}).Where("user_id = ? AND store_id = ?", userID, storeID).Count(&count)
	assert.Equal(t, int64(1), count)

	rating, err := repo.FindByUserAndStore(userID, storeID)
	require.NoError(t, err)
	assert.Equal(t, 3, rating.Rating, "last write wins")
}

func TestUpsertRefreshesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	userID, storeID := seedUserAndStore(t, db)

	require.NoError(t, repo.Upsert(&entity.Rating{UserID: userID, StoreID: storeID, Rating: 2}))
	first, err := repo.FindByUserAndStore(userID, storeID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Upsert(&entity.Rating{UserID: userID, StoreID: storeID, Rating: 4}))
	second, err := repo.FindByUserAndStore(userID, storeID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
}

func TestAverageForStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	_, storeID := seedUserAndStore(t, db)

	avg, err := repo.AverageForStore(storeID)
	require.NoError(t, err)
	assert.Zero(t, avg, "no ratings means 0")

	for i, v := range []int{5, 4, 4} {
		u := entity.User{Name: "Another Twenty Character Name", Email: string(rune('a'+i)) + "@example.com", Password: "x", Role: entity.RoleUser}
		require.NoError(t, db.Create(&u).Error)
		require.NoError(t, repo.Upsert(&entity.Rating{UserID: u.ID, StoreID: storeID, Rating: v}))
	}

	avg, err = repo.AverageForStore(storeID)
	require.NoError(t, err)
	assert.InDelta(t, 13.0/3.0, avg, 1e-9)
}

func TestRatersForStoreNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRatingRepository(db)
	_, storeID := seedUserAndStore(t, db)

	base := time.Now().Add(-time.Hour)
	names := []string{"First Rater With A Long Name", "Second Rater With A Long Name"}
	for i, n := range names {
		u := entity.User{Name: n, Email: string(rune('x'+i)) + "@example.com", Password: "x", Role: entity.RoleUser}
		require.NoError(t, db.Create(&u).Error)
		r := entity.Rating{UserID: u.ID, StoreID: storeID, Rating: i + 1, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, db.Create(&r).Error)
	}

	rows, err := repo.RatersForStore(storeID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Second Rater With A Long Name", rows[0].Name)
	assert.Equal(t, "First Rater With A Long Name", rows[1].Name)
}
