// internal/infrastructure/database/postgres/order_store.go
package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/arcadiareads/bookstore-backend/internal/domain/order"
)

// OrderStore is the gorm-backed order store
type OrderStore struct {
	db *DB
}

// NewOrderStore creates a new order store
func NewOrderStore(db *DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create inserts an order with its items and initial history row
func (s *OrderStore) Create(ctx context.Context, o *order.Order) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
	if isUniqueViolation(err) {
		return order.ErrDuplicateOrderNumber
	}
	return err
}

// FindByID retrieves an order with its items and status history
func (s *OrderStore) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var o order.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// List retrieves orders matching the filter with a total count
func (s *OrderStore) List(ctx context.Context, f order.ListFilter) ([]order.Order, int64, error) {
	query := s.db.WithContext(ctx).Model(&order.Order{})

	if f.UserID != nil {
		query = query.Where("user_id = ?", *f.UserID)
	}
	if f.Status != nil {
		query = query.Where("status = ?", *f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (f.Page - 1) * f.Limit
	var orders []order.Order
	err := query.Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(f.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// SetStatus persists a status change and its history row atomically
func (s *OrderStore) SetStatus(ctx context.Context, o *order.Order, change *order.StatusChange) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":       o.Status,
			"processed_at": o.ProcessedAt,
			"shipped_at":   o.ShippedAt,
			"delivered_at": o.DeliveredAt,
		}
		result := tx.Model(&order.Order{}).Where("id = ?", o.ID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return order.ErrNotFound
		}
		return tx.Create(change).Error
	})
}

// CountCreatedSince counts orders created at or after the given time
func (s *OrderStore) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&order.Order{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
