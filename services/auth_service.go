package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gaurisonawane07/StoreRater/configs"
	"github.com/gaurisonawane07/StoreRater/entity"
	"github.com/gaurisonawane07/StoreRater/pkg/apperr"
	"github.com/gaurisonawane07/StoreRater/repository"
	"github.com/gaurisonawane07/StoreRater/utils"
	"github.com/gaurisonawane07/StoreRater/validators"
)

type AuthService struct {
	Users *repository.UserRepository
	Cfg   *configs.Config
}

func NewAuthService(users *repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{Users: users, Cfg: cfg}
}

// Register validates the fields in order, rejects duplicate emails
// (case-folded) and always stores role "user". Self-registration never
// assigns another role.
func (s *AuthService) Register(name, email, password, address string) (*entity.User, string, error) {
	if ok, msg := validators.ValidateName(name); !ok {
		return nil, "", apperr.Validation(msg)
	}
	if ok, msg := validators.ValidateEmail(email); !ok {
		return nil, "", apperr.Validation(msg)
	}
	if ok, msg := validators.ValidatePassword(password); !ok {
		return nil, "", apperr.Validation(msg)
	}
	if ok, msg := validators.ValidateAddress(address); !ok {
		return nil, "", apperr.Validation(msg)
	}

	exists, err := s.Users.EmailExists(email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", apperr.Conflict("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Name:     name,
		Email:    strings.ToLower(email),
		Password: string(hashed),
		Address:  address,
		Role:     entity.RoleUser,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login returns the same error for an unknown email and a wrong password
// so a caller cannot probe which accounts exist.
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperr.Validation("Email and password required")
	}

	user, err := s.Users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Unauthorized("Invalid credentials")
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.Unauthorized("Invalid credentials")
	}

	token, err := utils.GenerateToken(user, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// UpdatePassword re-verifies the current password before overwriting the
// hash. No token rotation happens here.
func (s *AuthService) UpdatePassword(userID uint, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperr.Validation("oldPassword and newPassword required")
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return apperr.Unauthorized("Old password is incorrect")
	}
	if ok, msg := validators.ValidatePassword(newPassword); !ok {
		return apperr.Validation(msg)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(userID, string(hashed))
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
