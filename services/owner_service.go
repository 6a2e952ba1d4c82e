package services

import (
	"github.com/gaurisonawane07/StoreRater/repository"
)

type OwnerService struct {
	Stores  *repository.StoreRepository
	Ratings *repository.RatingRepository
}

func NewOwnerService(stores *repository.StoreRepository, ratings *repository.RatingRepository) *OwnerService {
	return &OwnerService{Stores: stores, Ratings: ratings}
}

type StoreSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type OwnerStoreRatings struct {
	Store         StoreSummary          `json:"store"`
	AverageRating float64               `json:"averageRating"`
	Ratings       []repository.RaterRow `json:"ratings"`
}

// StoresWithRatings aggregates every store owned by ownerID: its average
// and the full rater list, newest first.
func (s *OwnerService) StoresWithRatings(ownerID uint) ([]OwnerStoreRatings, error) {
	stores, err := s.Stores.FindOwned(ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]OwnerStoreRatings, 0, len(stores))
	for _, store := range stores {
		avg, err := s.Ratings.AverageForStore(store.ID)
		if err != nil {
			return nil, err
		}
		raters, err := s.Ratings.RatersForStore(store.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, OwnerStoreRatings{
			Store:         StoreSummary{ID: store.ID, Name: store.Name},
			AverageRating: round2(avg),
			Ratings:       raters,
		})
	}
	return result, nil
}
