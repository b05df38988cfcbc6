package models

import "time"

// Order statuses. Transitions are unrestricted; an admin may move an order
// between any two statuses.
const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// OrderStatuses lists every accepted status value.
var OrderStatuses = []string{StatusPending, StatusShipped, StatusDelivered, StatusCancelled}

// ValidStatus reports whether s is one of the enumerated order statuses.
func ValidStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ShippingAddress is stored flattened on the orders table and serialised as a
// nested object, matching what the storefront submits at checkout.
type ShippingAddress struct {
	FullName   string `gorm:"column:shipping_name;size:200" json:"fullName"`
	Address    string `gorm:"column:shipping_address;type:text" json:"address"`
	City       string `gorm:"column:shipping_city;size:100" json:"city"`
	PostalCode string `gorm:"column:shipping_postal_code;size:20" json:"postalCode"`
	Phone      string `gorm:"column:shipping_phone;size:30" json:"phone"`
}

// Complete reports whether every address field is non-empty.
func (a ShippingAddress) Complete() bool {
	return a.FullName != "" && a.Address != "" && a.City != "" &&
		a.PostalCode != "" && a.Phone != ""
}

// Order is one checkout by one user. TotalAmount is recorded as submitted by
// the client; the server does not recompute it from the items.
type Order struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	UserID          uint    `gorm:"not null;index" json:"-"`
	TotalAmount     float64 `gorm:"not null;check:total_amount >= 0" json:"totalAmount"`
	Status          string  `gorm:"size:30;not null;default:Pending" json:"status"`
	ShippingAddress ShippingAddress `gorm:"embedded" json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	// Owner summary, resolved at read time. Not a column.
	User UserSummary `gorm:"-" json:"user"`
}

// OrderItem is an immutable snapshot of one purchased artwork. Title, price
// and image are copied at checkout so the order survives later catalog edits;
// ArtworkID degrades to NULL if the artwork is deleted.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"not null;index" json:"-"`
	ArtworkID *uint   `gorm:"index" json:"artworkId,omitempty"`
	Title     string  `gorm:"size:255;not null" json:"title"`
	Price     float64 `gorm:"not null" json:"price"`
	ImageURL  string  `gorm:"column:image_url" json:"imageUrl"`
	Quantity  int     `gorm:"not null;default:1;check:quantity >= 1" json:"quantity"`

	Artwork *Artwork `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
