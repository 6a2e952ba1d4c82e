package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gaurisonawane07/StoreRater/entity"
)

// StoreRepository owns all access to the stores table, including the
// rating aggregates computed per row.
type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

type StoreFilter struct {
	Query   string // substring on name
	Address string // substring on address
	SortBy  string // name | rating
	SortDir string
	Page    int
	Limit   int
}

// StoreRow is a store annotated with its average rating and, when the
// caller is known, their own rating.
type StoreRow struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	OwnerID   *uint     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	AvgRating float64   `json:"avg_rating"`
	MyRating  *int      `json:"my_rating"`
}

// AdminStoreRow matches the admin listing shape, rating under "rating".
type AdminStoreRow struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	OwnerID   *uint     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	Rating    float64   `json:"rating"`
}

// List fetches stores with per-row aggregate subselects. callerID 0 matches
// no rating, leaving my_rating null for anonymous callers.
func (r *StoreRepository) List(f StoreFilter, callerID uint) ([]StoreRow, error) {
	q := r.DB.Model(&entity.Store{}).
		Select(`stores.id, stores.name, stores.address, stores.owner_id, stores.created_at,
			COALESCE((SELECT AVG(r.rating) FROM ratings r WHERE r.store_id = stores.id), 0) AS avg_rating,
			(SELECT r.rating FROM ratings r WHERE r.store_id = stores.id AND r.user_id = ?) AS my_rating`, callerID)

	if f.Query != "" {
		q = q.Where("LOWER(stores.name) LIKE ?", "%"+strings.ToLower(f.Query)+"%")
	}
	if f.Address != "" {
		q = q.Where("LOWER(stores.address) LIKE ?", "%"+strings.ToLower(f.Address)+"%")
	}

	order := "stores.name"
	if f.SortBy == "rating" {
		order = "avg_rating"
	}
	if f.SortDir == "desc" {
		order += " DESC"
	} else {
		order += " ASC"
	}

	var rows []StoreRow
	err := q.Order(order).
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Scan(&rows).Error
	return rows, err
}

// AdminList joins ratings once and groups, sorted by name.
func (r *StoreRepository) AdminList(page, limit int) ([]AdminStoreRow, error) {
	var rows []AdminStoreRow
	err := r.DB.Model(&entity.Store{}).
		Select("stores.id, stores.name, stores.address, stores.owner_id, stores.created_at, COALESCE(AVG(ratings.rating), 0) AS rating").
		Joins("LEFT JOIN ratings ON ratings.store_id = stores.id").
		Group("stores.id").
		Order("stores.name").
		Limit(limit).Offset((page - 1) * limit).
		Scan(&rows).Error
	return rows, err
}

func (r *StoreRepository) FindByID(id uint) (*entity.Store, error) {
	var store entity.Store
	if err := r.DB.First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepository) Create(store *entity.Store) error {
	return r.DB.Create(store).Error
}

func (r *StoreRepository) FindOwned(ownerID uint) ([]entity.Store, error) {
	var stores []entity.Store
	err := r.DB.Where("owner_id = ?", ownerID).Find(&stores).Error
	return stores, err
}

func (r *StoreRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Store{}).Count(&count).Error
	return count, err
}
