package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gaurisonawane07/StoreRater/entity"
)

// RatingRepository owns all access to the ratings table.
type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// RaterRow is one rater of a store as the owner dashboard sees them.
type RaterRow struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *RatingRepository) FindByUserAndStore(userID, storeID uint) (*entity.Rating, error) {
	var rating entity.Rating
	if err := r.DB.Where("user_id = ? AND store_id = ?", userID, storeID).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// Upsert writes the rating atomically. Two concurrent submissions for the
// same (user, store) pair land on the unique index and the loser becomes
// an update, so the one-row invariant holds without a prior read.
func (r *RatingRepository) Upsert(rating *entity.Rating) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"rating":     rating.Rating,
			"updated_at": time.Now(),
		}),
	}).Create(rating).Error
}

// AverageForStore returns the raw mean; callers round for presentation.
func (r *RatingRepository) AverageForStore(storeID uint) (float64, error) {
	var avg *float64
	err := r.DB.Model(&entity.Rating{}).
		Where("store_id = ?", storeID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

// RatersForStore lists rater identities and values, newest first.
func (r *RatingRepository) RatersForStore(storeID uint) ([]RaterRow, error) {
	var rows []RaterRow
	err := r.DB.Model(&entity.Rating{}).
		Select("users.id, users.name, users.email, ratings.rating, ratings.created_at").
		Joins("JOIN users ON users.id = ratings.user_id").
		Where("ratings.store_id = ?", storeID).
		Order("ratings.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *RatingRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Rating{}).Count(&count).Error
	return count, err
}
