package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gaurisonawane07/StoreRater/entity"
	"github.com/gaurisonawane07/StoreRater/pkg/apperr"
	"github.com/gaurisonawane07/StoreRater/repository"
)

type AdminService struct {
	Users   *repository.UserRepository
	Stores  *repository.StoreRepository
	Ratings *repository.RatingRepository
}

func NewAdminService(users *repository.UserRepository, stores *repository.StoreRepository, ratings *repository.RatingRepository) *AdminService {
	return &AdminService{Users: users, Stores: stores, Ratings: ratings}
}

type DashboardCounts struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// Dashboard runs the three counts independently.
func (s *AdminService) Dashboard() (*DashboardCounts, error) {
	users, err := s.Users.Count()
	if err != nil {
		return nil, err
	}
	stores, err := s.Stores.Count()
	if err != nil {
		return nil, err
	}
	ratings, err := s.Ratings.Count()
	if err != nil {
		return nil, err
	}
	return &DashboardCounts{TotalUsers: users, TotalStores: stores, TotalRatings: ratings}, nil
}

func (s *AdminService) ListUsers(f repository.UserFilter) ([]repository.UserRow, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	return s.Users.List(f)
}

// CreateUser is the admin path that may assign any role; it defaults to
// "user" when none is given.
func (s *AdminService) CreateUser(name, email, password, address string, role entity.Role) (*entity.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validation("Name, email, and password are required")
	}
	if role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, apperr.Validation("Invalid role")
	}

	exists, err := s.Users.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("User already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     name,
		Email:    strings.ToLower(email),
		Password: string(hashed),
		Address:  address,
		Role:     role,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
