package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/models"
	"github.com/artcocktail/artcocktail/app/repositories"
)

func TestListFiltersByCategory(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewArtworkRepository(db)

	seedArtwork(t, db, "One", 100)
	resin := models.Artwork{Title: "Two", Price: 200, ImageURL: "/x.jpg", Category: "resin"}
	require.NoError(t, db.Create(&resin).Error)

	all, err := repo.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	all, err = repo.List("all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := repo.List("resin")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Two", filtered[0].Title)

	empty, err := repo.List("portrait")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDeleteDetachesOrderItems(t *testing.T) {
	db := openTestDB(t)
	artworks := repositories.NewArtworkRepository(db)
	orders := repositories.NewOrderRepository(db)
	user := seedUser(t, db, "buyer@example.com")
	artwork := seedArtwork(t, db, "Golden Horizon", 4500)

	order := models.Order{
		UserID:          user.ID,
		TotalAmount:     4500,
		Status:          models.StatusPending,
		ShippingAddress: testAddress(),
		Items: []models.OrderItem{
			{ArtworkID: &artwork.ID, Title: artwork.Title, Price: artwork.Price, ImageURL: artwork.ImageURL, Quantity: 1},
		},
	}
	require.NoError(t, orders.Create(&order))

	require.NoError(t, artworks.Delete(artwork.ID))

	stored, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Nil(t, stored.Items[0].ArtworkID)
	assert.Equal(t, "Golden Horizon", stored.Items[0].Title)
	assert.Equal(t, 4500.0, stored.Items[0].Price)
}

func TestDeleteMissingArtwork(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewArtworkRepository(db)
	assert.ErrorIs(t, repo.Delete(42), gorm.ErrRecordNotFound)
}
