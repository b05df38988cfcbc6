package seeders

import (
	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/models"
)

func init() {
	Register("starter artworks", SeedArtworks)
}

var starterArtworks = []models.Artwork{
	{
		Title:       "Golden Horizon",
		Description: "Warm sunset tones layered in heavy acrylic over a textured canvas.",
		Price:       4500,
		ImageURL:    "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=800",
		Category:    "painting",
	},
	{
		Title:       "Ocean Resin Dreams",
		Description: "Deep blue resin pour with white cell detail, finished with a gloss coat.",
		Price:       6200,
		ImageURL:    "https://images.unsplash.com/photo-1549490349-8643362247b5?w=800",
		Category:    "resin",
	},
	{
		Title:       "Crimson Elegance",
		Description: "Bold strokes of crimson and gold on a dark ground.",
		Price:       3800,
		ImageURL:    "https://images.unsplash.com/photo-1536924940846-227afb31e2a5?w=800",
		Category:    "abstract",
	},
	{
		Title:       "Midnight Garden",
		Description: "Night blooms rendered in oil, framed in black walnut.",
		Price:       5400,
		ImageURL:    "https://images.unsplash.com/photo-1578301978693-85fa9c0320b9?w=800",
		Category:    "landscape",
	},
	{
		Title:       "Cosmic Nebula",
		Description: "Resin and pigment galaxy swirl on a round birch panel.",
		Price:       7100,
		ImageURL:    "https://images.unsplash.com/photo-1563089145-599997674d42?w=800",
		Category:    "resin",
	},
	{
		Title:       "Urban Fragments",
		Description: "Mixed-media collage of city textures and torn paper.",
		Price:       2900,
		ImageURL:    "https://images.unsplash.com/photo-1578926288207-a90a5366759d?w=800",
		Category:    "modern",
	},
}

// SeedArtworks inserts the starter catalog into an empty artworks table.
func SeedArtworks(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Artwork{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&starterArtworks).Error
}
