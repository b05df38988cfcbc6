package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/artcocktail/artcocktail/app/models"
	"github.com/artcocktail/artcocktail/app/repositories"
	"github.com/artcocktail/artcocktail/pkg/metrics"
)

// OrderItemInput is one cart line submitted at checkout. ArtworkID is the
// client's reference into the catalog; the snapshot fields are what gets
// stored on the order.
type OrderItemInput struct {
	ArtworkID uint    `json:"artworkId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
}

// PlaceOrderInput is the checkout payload.
type PlaceOrderInput struct {
	Items           []OrderItemInput       `json:"items"`
	TotalAmount     float64                `json:"totalAmount" validate:"gte=0"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
}

// OrderService implements checkout and order administration.
type OrderService struct {
	orders   *repositories.OrderRepository
	users    *repositories.UserRepository
	artworks *repositories.ArtworkRepository
}

func NewOrderService(
	orders *repositories.OrderRepository,
	users *repositories.UserRepository,
	artworks *repositories.ArtworkRepository,
) *OrderService {
	return &OrderService{orders: orders, users: users, artworks: artworks}
}

// PlaceOrder validates the checkout payload and persists the order header
// plus all line items atomically. The returned order is assembled from the
// inserted rows, not re-read.
//
// TotalAmount is stored as submitted; it is not recomputed against current
// catalog prices.
func (s *OrderService) PlaceOrder(owner models.UserSummary, in PlaceOrderInput) (models.Order, error) {
	if len(in.Items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return models.Order{}, ErrInvalidQuantity
		}
		if strings.TrimSpace(item.Title) == "" || item.Price < 0 {
			return models.Order{}, ErrInvalidItem
		}
	}
	if !in.ShippingAddress.Complete() {
		return models.Order{}, ErrIncompleteAddress
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, models.OrderItem{
			ArtworkID: s.resolveArtwork(item.ArtworkID),
			Title:     item.Title,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
		})
	}

	order := models.Order{
		UserID:          owner.ID,
		TotalAmount:     in.TotalAmount,
		Status:          models.StatusPending,
		ShippingAddress: in.ShippingAddress,
		Items:           items,
	}
	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, fmt.Errorf("orders: place order: %w", err)
	}

	order.User = owner
	metrics.OrdersPlaced.Inc()
	metrics.OrderValue.Observe(order.TotalAmount)
	return order, nil
}

// ListMine returns only the calling user's orders, newest first.
func (s *OrderService) ListMine(owner models.UserSummary) ([]models.Order, error) {
	orders, err := s.orders.ListByUser(owner.ID)
	if err != nil {
		return nil, fmt.Errorf("orders: list mine: %w", err)
	}
	for i := range orders {
		orders[i].User = owner
	}
	return orders, nil
}

// ListAll returns every order with its owner summary, degrading to a
// placeholder when the owning user row is gone.
func (s *OrderService) ListAll() ([]models.Order, error) {
	orders, err := s.orders.ListAll()
	if err != nil {
		return nil, fmt.Errorf("orders: list all: %w", err)
	}
	for i := range orders {
		orders[i].User = s.ownerSummary(orders[i].UserID)
	}
	return orders, nil
}

// SetStatus moves an order to any of the four enumerated statuses. No
// ordering between statuses is enforced.
func (s *OrderService) SetStatus(id uint, status string) (models.Order, error) {
	if !models.ValidStatus(status) {
		return models.Order{}, ErrInvalidStatus
	}

	order, err := s.orders.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, fmt.Errorf("orders: set status: %w", err)
	}

	order.User = s.ownerSummary(order.UserID)
	return order, nil
}

// Delete removes an order and its items.
func (s *OrderService) Delete(id uint) error {
	if err := s.orders.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("orders: delete: %w", err)
	}
	return nil
}

// resolveArtwork maps the client's catalog reference to a stored artwork id,
// or nil when the reference is absent or no longer resolvable.
func (s *OrderService) resolveArtwork(id uint) *uint {
	if id == 0 {
		return nil
	}
	if _, err := s.artworks.FindByID(id); err != nil {
		return nil
	}
	return &id
}

func (s *OrderService) ownerSummary(userID uint) models.UserSummary {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return models.UserSummary{Name: "Deleted User", Email: "N/A"}
	}
	return models.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}
