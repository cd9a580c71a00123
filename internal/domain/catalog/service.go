// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service handles catalog business logic
type Service struct {
	store Store
	users UserDirectory
}

// NewService creates a new catalog service
func NewService(store Store, users UserDirectory) *Service {
	return &Service{
		store: store,
		users: users,
	}
}

// SubmitBookRequest represents a seller book submission
type SubmitBookRequest struct {
	Title       string    `json:"title" binding:"required"`
	Author      string    `json:"author" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	ImageURL    string    `json:"image_url"`
	Price       int64     `json:"price" binding:"required"`
	Stock       int       `json:"stock"`
	Year        int       `json:"year" binding:"required"`
	Condition   Condition `json:"condition"`
}

// BookListResponse represents a paginated catalog listing
type BookListResponse struct {
	Books      []Book     `json:"books"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// ListBooks retrieves the public catalog: approved books only, with
// optional category, condition, price and text filters.
func (s *Service) ListBooks(ctx context.Context, f ListFilter) (*BookListResponse, error) {
	approved := BookStatusApproved
	f.Status = &approved
	return s.list(ctx, f)
}

// AdminListBooks retrieves the full catalog for moderation, filterable by
// any status.
func (s *Service) AdminListBooks(ctx context.Context, actorID uint, f ListFilter) (*BookListResponse, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.list(ctx, f)
}

// GetBook retrieves a single approved book for public display.
func (s *Service) GetBook(ctx context.Context, id uint) (*Book, error) {
	b, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.IsVisible() {
		return nil, ErrNotFound
	}

	return b, nil
}

// SubmitBook creates a pending book owned by the submitting seller.
func (s *Service) SubmitBook(ctx context.Context, sellerID uint, req *SubmitBookRequest) (*Book, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	condition := req.Condition
	if condition == "" {
		condition = ConditionNew
	}

	b := Book{
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Price:       req.Price,
		Stock:       req.Stock,
		Year:        req.Year,
		Condition:   condition,
		SellerID:    &sellerID,
		Status:      BookStatusPending,
	}

	if err := s.store.Create(ctx, &b); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &b, nil
}

// ApproveBook transitions a book to approved. Re-approving is an
// idempotent overwrite.
func (s *Service) ApproveBook(ctx context.Context, actorID, id uint) error {
	return s.setStatus(ctx, actorID, id, BookStatusApproved)
}

// RejectBook transitions a book to rejected.
func (s *Service) RejectBook(ctx context.Context, actorID, id uint) error {
	return s.setStatus(ctx, actorID, id, BookStatusRejected)
}

// UpdateStock sets the stock count of a book.
func (s *Service) UpdateStock(ctx context.Context, actorID, id uint, stock int) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	if stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}

	return s.store.UpdateStock(ctx, id, stock)
}

// UpdatePrice sets the price of a book in cents.
func (s *Service) UpdatePrice(ctx context.Context, actorID, id uint, price int64) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	if price <= 0 {
		return fmt.Errorf("price must be positive")
	}

	return s.store.UpdatePrice(ctx, id, price)
}

// Categories returns the distinct categories present in the catalog,
// for the browse filter.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.store.Categories(ctx)
}

// Private helper methods

func (s *Service) list(ctx context.Context, f ListFilter) (*BookListResponse, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	books, total, err := s.store.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve books: %w", err)
	}

	totalPages := int((total + int64(f.Limit) - 1) / int64(f.Limit))

	return &BookListResponse{
		Books: books,
		Pagination: Pagination{
			Page:       f.Page,
			Limit:      f.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    f.Page < totalPages,
			HasPrev:    f.Page > 1,
		},
	}, nil
}

func (s *Service) setStatus(ctx context.Context, actorID, id uint, status BookStatus) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}

	if _, err := s.store.FindByID(ctx, id); err != nil {
		return err
	}

	return s.store.SetStatus(ctx, id, status)
}

func (s *Service) requireAdmin(ctx context.Context, actorID uint) error {
	isAdmin, err := s.users.IsAdmin(ctx, actorID)
	if err != nil {
		return ErrForbidden
	}
	if !isAdmin {
		return ErrForbidden
	}
	return nil
}

func validateSubmission(req *SubmitBookRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(req.Author) == "" {
		return fmt.Errorf("author is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		return fmt.Errorf("category is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if req.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	if currentYear := time.Now().Year(); req.Year < 1800 || req.Year > currentYear {
		return fmt.Errorf("year must be between 1800 and %d", currentYear)
	}
	if req.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	if req.Condition != "" && !req.Condition.Valid() {
		return fmt.Errorf("unknown condition: %s", req.Condition)
	}
	return nil
}
