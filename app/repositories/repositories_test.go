package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/models"
	"github.com/artcocktail/artcocktail/pkg/database"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Artwork{}, &models.Order{}, &models.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "hash", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedArtwork(t *testing.T, db *gorm.DB, title string, price float64) models.Artwork {
	t.Helper()
	artwork := models.Artwork{
		Title:    title,
		Price:    price,
		ImageURL: "/uploads/artworks/" + title + ".jpg",
		Category: "painting",
	}
	require.NoError(t, db.Create(&artwork).Error)
	return artwork
}

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FullName:   "Jane Buyer",
		Address:    "12 Gallery Lane",
		City:       "Lisbon",
		PostalCode: "1000-001",
		Phone:      "+351900000000",
	}
}
