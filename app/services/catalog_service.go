package services

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/models"
	"github.com/artcocktail/artcocktail/app/repositories"
	"github.com/artcocktail/artcocktail/config"
	"github.com/artcocktail/artcocktail/pkg/logger"
	"github.com/artcocktail/artcocktail/pkg/storage"
)

// ImageUpload is a decoded multipart image accompanying an artwork write.
type ImageUpload struct {
	Data []byte
	Ext  string // ".jpg", ".png", ...
}

// ArtworkFields are the writable artwork attributes. On update, nil pointers
// leave the stored value unchanged.
type ArtworkFields struct {
	Title       *string
	Description *string
	Price       *float64
	Category    *string
}

// CatalogService implements artwork CRUD plus the image asset side effects.
type CatalogService struct {
	artworks *repositories.ArtworkRepository
	disk     storage.Disk
}

func NewCatalogService(artworks *repositories.ArtworkRepository, disk storage.Disk) *CatalogService {
	return &CatalogService{artworks: artworks, disk: disk}
}

// List returns the catalog, optionally filtered by category, newest first.
func (s *CatalogService) List(category string) ([]models.Artwork, error) {
	return s.artworks.List(category)
}

// Get returns one artwork.
func (s *CatalogService) Get(id uint) (models.Artwork, error) {
	artwork, err := s.artworks.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Artwork{}, ErrNotFound
		}
		return models.Artwork{}, fmt.Errorf("catalog: find artwork: %w", err)
	}
	return artwork, nil
}

// Create stores the image asset and persists a new artwork.
func (s *CatalogService) Create(fields ArtworkFields, image *ImageUpload) (models.Artwork, error) {
	if image == nil || len(image.Data) == 0 {
		return models.Artwork{}, ErrMissingImage
	}

	artwork := models.Artwork{Category: "painting"}
	applyFields(&artwork, fields)
	if !models.ValidCategory(artwork.Category) {
		return models.Artwork{}, ErrInvalidCategory
	}

	imageURL, err := s.storeImage(image)
	if err != nil {
		return models.Artwork{}, err
	}
	artwork.ImageURL = imageURL

	if err := s.artworks.Create(&artwork); err != nil {
		return models.Artwork{}, fmt.Errorf("catalog: create artwork: %w", err)
	}
	return artwork, nil
}

// Update changes only the supplied fields. A new image replaces the stored
// asset; removing the old file is best effort and never fails the update.
func (s *CatalogService) Update(id uint, fields ArtworkFields, image *ImageUpload) (models.Artwork, error) {
	artwork, err := s.Get(id)
	if err != nil {
		return models.Artwork{}, err
	}

	applyFields(&artwork, fields)
	if !models.ValidCategory(artwork.Category) {
		return models.Artwork{}, ErrInvalidCategory
	}

	if image != nil && len(image.Data) > 0 {
		imageURL, err := s.storeImage(image)
		if err != nil {
			return models.Artwork{}, err
		}
		s.releaseImage(artwork.ImageURL)
		artwork.ImageURL = imageURL
	}

	if err := s.artworks.Save(&artwork); err != nil {
		return models.Artwork{}, fmt.Errorf("catalog: update artwork: %w", err)
	}
	return artwork, nil
}

// Delete removes the artwork and, best effort, its stored image. Order items
// referencing it keep their snapshots with the reference nulled.
func (s *CatalogService) Delete(id uint) error {
	artwork, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.artworks.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("catalog: delete artwork: %w", err)
	}

	s.releaseImage(artwork.ImageURL)
	return nil
}

func (s *CatalogService) storeImage(image *ImageUpload) (string, error) {
	name := path.Join("artworks", uuid.NewString()+strings.ToLower(image.Ext))
	if err := s.disk.Put(name, image.Data); err != nil {
		return "", fmt.Errorf("catalog: store image: %w", err)
	}
	return s.disk.URL(name), nil
}

// releaseImage deletes a stored image asset if the URL points into our
// storage. Seeded catalog entries reference external URLs; those are skipped.
func (s *CatalogService) releaseImage(imageURL string) {
	base := strings.TrimRight(config.StorageURL(), "/") + "/"
	rel := strings.TrimPrefix(imageURL, base)
	if rel == imageURL {
		return
	}
	if err := s.disk.Delete(rel); err != nil {
		logger.Warn("catalog: image cleanup failed", "url", imageURL, "error", err)
	}
}

func applyFields(artwork *models.Artwork, fields ArtworkFields) {
	if fields.Title != nil {
		artwork.Title = strings.TrimSpace(*fields.Title)
	}
	if fields.Description != nil {
		artwork.Description = strings.TrimSpace(*fields.Description)
	}
	if fields.Price != nil {
		artwork.Price = *fields.Price
	}
	if fields.Category != nil {
		artwork.Category = *fields.Category
	}
}
