package services_test

import (
	"io"
	"sort"
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

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FullName:   "Jane Buyer",
		Address:    "12 Gallery Lane",
		City:       "Lisbon",
		PostalCode: "1000-001",
		Phone:      "+351900000000",
	}
}

// memDisk is an in-memory image store for catalog tests.
type memDisk struct {
	files map[string][]byte
}

func newMemDisk() *memDisk {
	return &memDisk{files: map[string][]byte{}}
}

func (d *memDisk) Put(path string, content []byte) error {
	d.files[path] = content
	return nil
}

func (d *memDisk) PutStream(path string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.files[path] = content
	return nil
}

func (d *memDisk) Get(path string) ([]byte, error) {
	return d.files[path], nil
}

func (d *memDisk) Exists(path string) bool {
	_, ok := d.files[path]
	return ok
}

func (d *memDisk) Delete(path string) error {
	delete(d.files, path)
	return nil
}

func (d *memDisk) URL(path string) string {
	return "/uploads/" + path
}

func (d *memDisk) paths() []string {
	out := make([]string, 0, len(d.files))
	for p := range d.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
