package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/gaurisonawane07/StoreRater/entity"
)

// SeedAdmin creates the first admin account from env on a fresh database.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "System Administrator Default Name",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Address:  "HQ Address",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}
