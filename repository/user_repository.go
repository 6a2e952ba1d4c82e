package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gaurisonawane07/StoreRater/entity"
)

// UserRepository owns all access to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// UserFilter drives the admin user listing. Zero values mean "no filter".
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    entity.Role
	SortBy  string
	SortDir string
	Page    int
	Limit   int
}

// Sortable columns; anything else falls back to name.
var userSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"email":      "email",
	"address":    "address",
	"role":       "role",
	"created_at": "created_at",
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) UpdatePassword(userID uint, hash string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Update("password", hash).Error
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Count(&count).Error
	return count, err
}

// UserRow is the admin listing shape: everything except the hash.
type UserRow struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// List applies substring filters (case-insensitive), an exact role match
// and whitelisted sorting.
func (r *UserRepository) List(f UserFilter) ([]UserRow, error) {
	q := r.DB.Model(&entity.User{})

	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.Email != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(f.Email)+"%")
	}
	if f.Address != "" {
		q = q.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(f.Address)+"%")
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}

	col, ok := userSortColumns[f.SortBy]
	if !ok {
		col = "name"
	}
	dir := "ASC"
	if f.SortDir == "desc" {
		dir = "DESC"
	}

	var rows []UserRow
	err := q.Select("id, name, email, address, role, created_at").
		Order(col + " " + dir).
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Scan(&rows).Error
	return rows, err
}
