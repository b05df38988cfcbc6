package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/artcocktail/artcocktail/app/models"
)

// OrderRepository handles database operations for Order and OrderItem.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order header and every line item inside one transaction.
// A failure on any insert rolls the whole order back; readers never observe a
// header without its items. On success order.ID and item IDs are populated
// from the inserted rows.
func (r *OrderRepository) Create(order *models.Order) error {
	items := order.Items
	order.Items = nil

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Omit(clause.Associations).Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})

	order.Items = items
	return err
}

// ListByUser returns the given user's orders, newest first, items attached.
func (r *OrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// ListAll returns every order, newest first, items attached.
func (r *OrderRepository) ListAll() ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// FindByID returns one order with its items.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	return order, err
}

// UpdateStatus sets the order's status and returns the updated row.
func (r *OrderRepository) UpdateStatus(id uint, status string) (models.Order, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return models.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Delete removes the order and all of its items. Items have no meaning
// without their order, so this is a true cascade.
func (r *OrderRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
