// internal/domain/cart/store.go
package cart

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a cart line does not exist
	ErrNotFound = errors.New("cart item not found")
	// ErrBookUnavailable is returned when a book cannot be added to a cart
	ErrBookUnavailable = errors.New("book is not available")
)

// Store persists cart documents keyed by owner.
// An owner key is either "user:<id>" or "session:<uuid>".
type Store interface {
	Get(ctx context.Context, owner string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	Delete(ctx context.Context, owner string) error
}

// BookDirectory exposes the catalog lookups the cart workflow needs
type BookDirectory interface {
	GetApprovedBook(ctx context.Context, bookID uint) (*BookInfo, error)
}

// BookInfo is the book snapshot copied onto a cart line
type BookInfo struct {
	ID       uint
	Title    string
	Author   string
	ImageURL string
	Price    int64
	Stock    int
}
