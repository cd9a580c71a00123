// internal/infrastructure/database/postgres/review_store.go
package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/arcadiareads/bookstore-backend/internal/domain/review"
)

// ReviewStore is the gorm-backed review store
type ReviewStore struct {
	db *DB
}

// NewReviewStore creates a new review store
func NewReviewStore(db *DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// Create inserts a new review
func (s *ReviewStore) Create(ctx context.Context, r *review.Review) error {
	return s.db.WithContext(ctx).Create(r).Error
}

// FindByID retrieves a review by ID
func (s *ReviewStore) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var r review.Review
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// List retrieves reviews matching the filter with a total count
func (s *ReviewStore) List(ctx context.Context, f review.ListFilter) ([]review.Review, int64, error) {
	query := s.db.WithContext(ctx).Model(&review.Review{})

	if f.BookID != nil {
		query = query.Where("book_id = ?", *f.BookID)
	}
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
	var reviews []review.Review
	err := query.Order("created_at DESC").
		Offset(offset).Limit(f.Limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// SetStatus updates a review's moderation status
func (s *ReviewStore) SetStatus(ctx context.Context, id uint, status review.ReviewStatus) error {
	result := s.db.WithContext(ctx).Model(&review.Review{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return review.ErrNotFound
	}
	return nil
}

// Summarize aggregates a book's approved reviews
func (s *ReviewStore) Summarize(ctx context.Context, bookID uint) (*review.Summary, error) {
	summary := review.Summary{
		BookID:    bookID,
		Breakdown: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	rows, err := s.db.WithContext(ctx).Model(&review.Review{}).
		Select("rating, COUNT(*) as count").
		Where("book_id = ? AND status = ?", bookID, review.ReviewStatusApproved).
		Group("rating").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sum int64
	for rows.Next() {
		var rating int
		var count int64
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		summary.Breakdown[rating] = int(count)
		summary.ReviewCount += count
		sum += int64(rating) * count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if summary.ReviewCount > 0 {
		summary.AverageRating = float64(sum) / float64(summary.ReviewCount)
	}

	return &summary, nil
}
