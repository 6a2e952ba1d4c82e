package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/gaurisonawane07/StoreRater/entity"
	"github.com/gaurisonawane07/StoreRater/pkg/apperr"
	"github.com/gaurisonawane07/StoreRater/repository"
)

type StoreService struct {
	Stores *repository.StoreRepository
	Users  *repository.UserRepository
}

func NewStoreService(stores *repository.StoreRepository, users *repository.UserRepository) *StoreService {
	return &StoreService{Stores: stores, Users: users}
}

// List returns stores annotated with avg_rating (2 decimals, 0 when
// unrated) and, for a logged-in caller, my_rating.
func (s *StoreService) List(f repository.StoreFilter, callerID uint) ([]repository.StoreRow, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 10
	}

	rows, err := s.Stores.List(f, callerID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AvgRating = round2(rows[i].AvgRating)
	}
	return rows, nil
}

// AdminList is the admin view: every store with its average under "rating",
// sorted by name.
func (s *StoreService) AdminList(page, limit int) ([]repository.AdminStoreRow, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.Stores.AdminList(page, limit)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Rating = round2(rows[i].Rating)
	}
	return rows, nil
}

// CreateByAdmin inserts a store; a supplied owner must resolve to a user
// holding the owner role.
func (s *StoreService) CreateByAdmin(name, address string, ownerID *uint) (*entity.Store, error) {
	if name == "" {
		return nil, apperr.Validation("Store name is required")
	}
	if ownerID != nil {
		owner, err := s.Users.FindByID(*ownerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation("Owner not found or not an owner")
			}
			return nil, err
		}
		if owner.Role != entity.RoleOwner {
			return nil, apperr.Validation("Owner not found or not an owner")
		}
	}

	store := &entity.Store{Name: name, Address: address, OwnerID: ownerID}
	if err := s.Stores.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}

// round2 rounds half away from zero, matching ROUND(..::numeric, 2).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
