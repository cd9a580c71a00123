// internal/infrastructure/database/postgres/book_store.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arcadiareads/bookstore-backend/internal/domain/cart"
	"github.com/arcadiareads/bookstore-backend/internal/domain/catalog"
)

// BookStore is the gorm-backed catalog store
type BookStore struct {
	db *DB
}

// NewBookStore creates a new book store
func NewBookStore(db *DB) *BookStore {
	return &BookStore{db: db}
}

// Create inserts a new book
func (s *BookStore) Create(ctx context.Context, b *catalog.Book) error {
	return s.db.WithContext(ctx).Create(b).Error
}

// FindByID retrieves a book by ID
func (s *BookStore) FindByID(ctx context.Context, id uint) (*catalog.Book, error) {
	var b catalog.Book
	if err := s.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// List retrieves books matching the filter with a total count
func (s *BookStore) List(ctx context.Context, f catalog.ListFilter) ([]catalog.Book, int64, error) {
	query := s.db.WithContext(ctx).Model(&catalog.Book{})

	if f.Status != nil {
		query = query.Where("status = ?", *f.Status)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Condition != "" {
		query = query.Where("condition = ?", f.Condition)
	}
	if f.SellerID != nil {
		query = query.Where("seller_id = ?", *f.SellerID)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where("title ILIKE ? OR author ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := f.SortBy
	switch sortBy {
	case "price", "year", "title", "created_at":
	default:
		sortBy = "created_at"
	}
	sortOrder := "DESC"
	if f.SortOrder == "asc" {
		sortOrder = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	offset := (f.Page - 1) * f.Limit
	var books []catalog.Book
	if err := query.Offset(offset).Limit(f.Limit).Find(&books).Error; err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// SetStatus updates a book's moderation status
func (s *BookStore) SetStatus(ctx context.Context, id uint, status catalog.BookStatus) error {
	result := s.db.WithContext(ctx).Model(&catalog.Book{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// UpdateStock sets a book's stock count
func (s *BookStore) UpdateStock(ctx context.Context, id uint, stock int) error {
	return s.updateField(ctx, id, "stock", stock)
}

// UpdatePrice sets a book's price in cents
func (s *BookStore) UpdatePrice(ctx context.Context, id uint, price int64) error {
	return s.updateField(ctx, id, "price", price)
}

// Categories returns the distinct categories in the catalog
func (s *BookStore) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.db.WithContext(ctx).Model(&catalog.Book{}).
		Where("status = ?", catalog.BookStatusApproved).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ApprovedBookExists reports whether an approved book with the given ID exists
func (s *BookStore) ApprovedBookExists(ctx context.Context, bookID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&catalog.Book{}).
		Where("id = ? AND status = ?", bookID, catalog.BookStatusApproved).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetApprovedBook returns the cart snapshot of an approved book
func (s *BookStore) GetApprovedBook(ctx context.Context, bookID uint) (*cart.BookInfo, error) {
	var b catalog.Book
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", bookID, catalog.BookStatusApproved).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}

	return &cart.BookInfo{
		ID:       b.ID,
		Title:    b.Title,
		Author:   b.Author,
		ImageURL: b.ImageURL,
		Price:    b.Price,
		Stock:    b.Stock,
	}, nil
}

func (s *BookStore) updateField(ctx context.Context, id uint, column string, value interface{}) error {
	result := s.db.WithContext(ctx).Model(&catalog.Book{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
