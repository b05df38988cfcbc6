package models

import "time"

// Categories an artwork may belong to. "all" is a query sentinel, not a
// stored value.
var ArtworkCategories = []string{
	"painting", "resin", "abstract", "portrait", "landscape", "modern", "other",
}

// ValidCategory reports whether c is one of the enumerated categories.
func ValidCategory(c string) bool {
	for _, v := range ArtworkCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Artwork is a catalog item available for purchase.
type Artwork struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       float64   `gorm:"not null;check:price >= 0" json:"price"`
	ImageURL    string    `gorm:"column:image_url;not null" json:"imageUrl"`
	Category    string    `gorm:"size:50;not null;default:painting" json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}
