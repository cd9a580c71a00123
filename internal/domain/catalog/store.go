// internal/domain/catalog/store.go
package catalog

import (
	"context"
	"errors"
)

// Sentinel errors returned by the catalog workflow.
var (
	ErrNotFound  = errors.New("book not found")
	ErrForbidden = errors.New("admin role required")
)

// ListFilter narrows a catalog listing.
type ListFilter struct {
	Status    *BookStatus
	Category  string
	Condition Condition
	SellerID  *uint
	MinPrice  *int64
	MaxPrice  *int64
	Search    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Store is the persistence boundary for catalog records.
type Store interface {
	Create(ctx context.Context, b *Book) error
	FindByID(ctx context.Context, id uint) (*Book, error)
	List(ctx context.Context, f ListFilter) ([]Book, int64, error)
	SetStatus(ctx context.Context, id uint, status BookStatus) error
	UpdateStock(ctx context.Context, id uint, stock int) error
	UpdatePrice(ctx context.Context, id uint, price int64) error
	Categories(ctx context.Context) ([]string, error)
}

// UserDirectory resolves role information for the acting user. The
// moderation operations authorize through it rather than trusting the caller.
type UserDirectory interface {
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}
