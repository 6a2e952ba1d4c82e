package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gaurisonawane07/StoreRater/entity"
	"github.com/gaurisonawane07/StoreRater/pkg/apperr"
	"github.com/gaurisonawane07/StoreRater/repository"
)

const (
	RatingSubmitted = "Rating submitted"
	RatingUpdated   = "Rating updated"
)

type RatingService struct {
	Ratings *repository.RatingRepository
	Stores  *repository.StoreRepository
}

func NewRatingService(ratings *repository.RatingRepository, stores *repository.StoreRepository) *RatingService {
	return &RatingService{Ratings: ratings, Stores: stores}
}

// SubmitOrUpdate upserts the caller's rating for a store. rating arrives as
// float64 so a non-integer JSON number can be rejected with the right
// message instead of a bind error.
func (s *RatingService) SubmitOrUpdate(userID, storeID uint, rating float64) (string, error) {
	if storeID == 0 || rating == 0 {
		return "", apperr.Validation("store_id and rating required")
	}
	value := int(rating)
	if float64(value) != rating || value < 1 || value > 5 {
		return "", apperr.Validation("Rating must be an integer 1-5")
	}

	if _, err := s.Stores.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("Store not found")
		}
		return "", err
	}

	// The outcome message comes from a pre-read; the write itself is an
	// atomic ON CONFLICT upsert, so a concurrent duplicate cannot produce
	// a second row.
	outcome := RatingSubmitted
	if _, err := s.Ratings.FindByUserAndStore(userID, storeID); err == nil {
		outcome = RatingUpdated
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if err := s.Ratings.Upsert(&entity.Rating{
		UserID:  userID,
		StoreID: storeID,
		Rating:  value,
	}); err != nil {
		return "", err
	}
	return outcome, nil
}
