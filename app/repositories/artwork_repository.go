package repositories

import (
	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/models"
)

// ArtworkRepository handles database operations for Artwork.
type ArtworkRepository struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

// List returns artworks newest first. category "" or "all" returns everything.
func (r *ArtworkRepository) List(category string) ([]models.Artwork, error) {
	q := r.db.Order("created_at DESC, id DESC")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	artworks := []models.Artwork{}
	err := q.Find(&artworks).Error
	return artworks, err
}

// FindByID looks up an artwork by primary key.
func (r *ArtworkRepository) FindByID(id uint) (models.Artwork, error) {
	var artwork models.Artwork
	err := r.db.First(&artwork, id).Error
	return artwork, err
}

// Create persists a new artwork.
func (r *ArtworkRepository) Create(artwork *models.Artwork) error {
	return r.db.Create(artwork).Error
}

// Save persists changes to an existing artwork.
func (r *ArtworkRepository) Save(artwork *models.Artwork) error {
	return r.db.Save(artwork).Error
}

// Delete removes the artwork row. Order items that reference it keep their
// snapshot fields; only the artwork reference is nulled, so order history
// stays intact. Both statements run in one transaction.
func (r *ArtworkRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OrderItem{}).
			Where("artwork_id = ?", id).
			Update("artwork_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Artwork{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
