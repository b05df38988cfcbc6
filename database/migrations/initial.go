package migrations

import (
	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/models"
	"github.com/artcocktail/artcocktail/pkg/migration"
)

func init() {
	migration.Register("20260801000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260801000001_create_artworks_table", &CreateArtworksTable{})
	migration.Register("20260801000002_create_orders_tables", &CreateOrdersTables{})
}

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

type CreateArtworksTable struct{}

func (m *CreateArtworksTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Artwork{})
}

func (m *CreateArtworksTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("artworks")
}

// CreateOrdersTables creates orders together with order_items so the foreign
// keys land in one step.
type CreateOrdersTables struct{}

func (m *CreateOrdersTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (m *CreateOrdersTables) Down(db *gorm.DB) error {
	if err := db.Migrator().DropTable("order_items"); err != nil {
		return err
	}
	return db.Migrator().DropTable("orders")
}
