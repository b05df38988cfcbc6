package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artcocktail/artcocktail/app/repositories"
	"github.com/artcocktail/artcocktail/app/services"
)

func newCatalogService(t *testing.T) (*services.CatalogService, *memDisk) {
	t.Helper()
	db := openTestDB(t)
	disk := newMemDisk()
	return services.NewCatalogService(repositories.NewArtworkRepository(db), disk), disk
}

func str(s string) *string   { return &s }
func num(f float64) *float64 { return &f }

func uploadPNG() *services.ImageUpload {
	return &services.ImageUpload{Data: []byte("png-bytes"), Ext: ".png"}
}

func TestCreateArtworkStoresImage(t *testing.T) {
	svc, disk := newCatalogService(t)

	artwork, err := svc.Create(services.ArtworkFields{
		Title: str("Golden Horizon"),
		Price: num(4500),
	}, uploadPNG())
	require.NoError(t, err)
	assert.NotZero(t, artwork.ID)
	assert.Equal(t, "painting", artwork.Category)

	paths := disk.paths()
	require.Len(t, paths, 1)
	assert.True(t, strings.HasPrefix(paths[0], "artworks/"))
	assert.True(t, strings.HasSuffix(paths[0], ".png"))
	assert.Equal(t, "/uploads/"+paths[0], artwork.ImageURL)
}

func TestCreateArtworkRequiresImage(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.Create(services.ArtworkFields{Title: str("No Image"), Price: num(100)}, nil)
	assert.ErrorIs(t, err, services.ErrMissingImage)
}

func TestCreateArtworkRejectsUnknownCategory(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.Create(services.ArtworkFields{
		Title:    str("Odd One"),
		Price:    num(100),
		Category: str("sculpture"),
	}, uploadPNG())
	assert.ErrorIs(t, err, services.ErrInvalidCategory)
}

func TestUpdateArtworkPartial(t *testing.T) {
	svc, _ := newCatalogService(t)

	artwork, err := svc.Create(services.ArtworkFields{
		Title:       str("Golden Horizon"),
		Description: str("Sunset tones."),
		Price:       num(4500),
	}, uploadPNG())
	require.NoError(t, err)

	updated, err := svc.Update(artwork.ID, services.ArtworkFields{Price: num(5000)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, updated.Price)
	assert.Equal(t, "Golden Horizon", updated.Title)
	assert.Equal(t, "Sunset tones.", updated.Description)
	assert.Equal(t, artwork.ImageURL, updated.ImageURL)
}

func TestUpdateArtworkReplacesImage(t *testing.T) {
	svc, disk := newCatalogService(t)

	artwork, err := svc.Create(services.ArtworkFields{
		Title: str("Golden Horizon"),
		Price: num(4500),
	}, uploadPNG())
	require.NoError(t, err)

	updated, err := svc.Update(artwork.ID, services.ArtworkFields{},
		&services.ImageUpload{Data: []byte("jpg-bytes"), Ext: ".jpg"})
	require.NoError(t, err)
	assert.NotEqual(t, artwork.ImageURL, updated.ImageURL)

	// Old asset is gone, only the replacement remains.
	paths := disk.paths()
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], ".jpg"))
}

func TestUpdateMissingArtwork(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.Update(42, services.ArtworkFields{Price: num(1)}, nil)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteArtworkRemovesImage(t *testing.T) {
	svc, disk := newCatalogService(t)

	artwork, err := svc.Create(services.ArtworkFields{
		Title: str("Golden Horizon"),
		Price: num(4500),
	}, uploadPNG())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(artwork.ID))
	assert.Empty(t, disk.paths())

	_, err = svc.Get(artwork.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetAndList(t *testing.T) {
	svc, _ := newCatalogService(t)

	first, err := svc.Create(services.ArtworkFields{
		Title: str("First"), Price: num(100), Category: str("resin"),
	}, uploadPNG())
	require.NoError(t, err)

	_, err = svc.Create(services.ArtworkFields{
		Title: str("Second"), Price: num(200),
	}, uploadPNG())
	require.NoError(t, err)

	got, err := svc.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	resin, err := svc.List("resin")
	require.NoError(t, err)
	require.Len(t, resin, 1)
	assert.Equal(t, "First", resin[0].Title)
}
