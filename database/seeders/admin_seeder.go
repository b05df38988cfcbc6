package seeders

import (
	"errors"

	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/models"
	"github.com/artcocktail/artcocktail/pkg/auth"
)

func init() {
	Register("admin user", SeedAdmin)
}

// SeedAdmin creates the default admin account if no row with its email
// exists yet.
func SeedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", "admin@artcocktail.com").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Admin",
		Email:    "admin@artcocktail.com",
		Password: hash,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
