// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"
)

// Service handles cart business logic
type Service struct {
	store Store
	books BookDirectory
}

// NewService creates a new cart service
func NewService(store Store, books BookDirectory) *Service {
	return &Service{
		store: store,
		books: books,
	}
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// UpdateItemRequest represents a quantity change on a cart line
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse represents a cart with computed totals
type CartResponse struct {
	Items     []Item    `json:"items"`
	ItemCount int       `json:"item_count"`
	Subtotal  int64     `json:"subtotal"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetCart returns the owner's cart, empty if none has been saved yet.
func (s *Service) GetCart(ctx context.Context, owner string) (*CartResponse, error) {
	c, err := s.store.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	return toResponse(c), nil
}

// AddItem adds a book to the cart. Adding a book already in the cart
// increments its quantity instead of creating a second line.
func (s *Service) AddItem(ctx context.Context, owner string, req *AddItemRequest) (*CartResponse, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	book, err := s.books.GetApprovedBook(ctx, req.BookID)
	if err != nil {
		return nil, ErrBookUnavailable
	}

	c, err := s.store.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	if i := c.findItem(req.BookID); i >= 0 {
		// Merging re-snapshots the line so it carries the current price
		c.Items[i].Quantity += quantity
		c.Items[i].Title = book.Title
		c.Items[i].Author = book.Author
		c.Items[i].ImageURL = book.ImageURL
		c.Items[i].Price = book.Price
	} else {
		c.Items = append(c.Items, Item{
			BookID:   book.ID,
			Title:    book.Title,
			Author:   book.Author,
			ImageURL: book.ImageURL,
			Price:    book.Price,
			Quantity: quantity,
			AddedAt:  time.Now(),
		})
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// UpdateQuantity sets the quantity of a cart line. A quantity of zero or
// less removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, owner string, bookID uint, quantity int) (*CartResponse, error) {
	c, err := s.store.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	i := c.findItem(bookID)
	if i < 0 {
		return nil, ErrNotFound
	}

	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	} else {
		c.Items[i].Quantity = quantity
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// RemoveItem deletes a cart line.
func (s *Service) RemoveItem(ctx context.Context, owner string, bookID uint) (*CartResponse, error) {
	return s.UpdateQuantity(ctx, owner, bookID, 0)
}

// ClearCart removes every line from the owner's cart.
func (s *Service) ClearCart(ctx context.Context, owner string) error {
	if err := s.store.Delete(ctx, owner); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Snapshot returns the raw cart document for checkout.
func (s *Service) Snapshot(ctx context.Context, owner string) (*Cart, error) {
	return s.store.Get(ctx, owner)
}

func (s *Service) save(ctx context.Context, c *Cart) error {
	c.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, c); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func toResponse(c *Cart) *CartResponse {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return &CartResponse{
		Items:     items,
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
		UpdatedAt: c.UpdatedAt,
	}
}
