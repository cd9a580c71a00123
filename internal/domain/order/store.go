// internal/domain/order/store.go
package order

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when an order does not exist
	ErrNotFound = errors.New("order not found")
	// ErrForbidden is returned when the caller may not access an order
	ErrForbidden = errors.New("forbidden")
	// ErrEmptyCart is returned when checkout is attempted with no items
	ErrEmptyCart = errors.New("cart is empty")
	// ErrDuplicateOrderNumber is returned when an insert loses the race
	// for a daily sequence number
	ErrDuplicateOrderNumber = errors.New("order number already taken")
)

// ListFilter narrows order listings
type ListFilter struct {
	UserID *uint
	Status *OrderStatus
	Page   int
	Limit  int
}

// Store persists orders
type Store interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, f ListFilter) ([]Order, int64, error)
	SetStatus(ctx context.Context, o *Order, change *StatusChange) error
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// UserDirectory answers authorization questions about users
type UserDirectory interface {
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}
