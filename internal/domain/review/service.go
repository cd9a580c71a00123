// internal/domain/review/service.go
package review

import (
	"context"
	"fmt"
	"math"
)

// Service handles review business logic
type Service struct {
	store Store
	books BookDirectory
	users UserDirectory
}

// NewService creates a new review service
func NewService(store Store, books BookDirectory, users UserDirectory) *Service {
	return &Service{
		store: store,
		books: books,
		users: users,
	}
}

// SubmitReviewRequest represents a review submission
type SubmitReviewRequest struct {
	BookID  uint   `json:"-"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ReviewListResponse represents a paginated review listing
type ReviewListResponse struct {
	Reviews []Review `json:"reviews"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
}

// SubmitReview creates a pending review on an approved book.
func (s *Service) SubmitReview(ctx context.Context, userID uint, req *SubmitReviewRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	exists, err := s.books.ApprovedBookExists(ctx, req.BookID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up book: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("book not found")
	}

	userName, err := s.users.DisplayName(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	r := Review{
		BookID:   req.BookID,
		UserID:   userID,
		UserName: userName,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Status:   ReviewStatusPending,
	}

	if err := s.store.Create(ctx, &r); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return &r, nil
}

// ApproveReview makes a review publicly visible. Re-approving is an
// idempotent overwrite.
func (s *Service) ApproveReview(ctx context.Context, actorID, id uint) error {
	return s.setStatus(ctx, actorID, id, ReviewStatusApproved)
}

// RejectReview hides a review from public listings.
func (s *Service) RejectReview(ctx context.Context, actorID, id uint) error {
	return s.setStatus(ctx, actorID, id, ReviewStatusRejected)
}

// ListBookReviews returns the approved reviews of a book, newest first.
func (s *Service) ListBookReviews(ctx context.Context, bookID uint, page, limit int) (*ReviewListResponse, error) {
	approved := ReviewStatusApproved
	return s.list(ctx, ListFilter{
		BookID: &bookID,
		Status: &approved,
		Page:   page,
		Limit:  limit,
	})
}

// ListForModeration returns reviews in the given state for the admin
// panel. The moderation queue is the pending list.
func (s *Service) ListForModeration(ctx context.Context, actorID uint, status ReviewStatus, page, limit int) (*ReviewListResponse, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	if !status.Valid() {
		return nil, fmt.Errorf("unknown review status: %s", status)
	}

	return s.list(ctx, ListFilter{
		Status: &status,
		Page:   page,
		Limit:  limit,
	})
}

// GetSummary aggregates a book's approved reviews: count, average rating
// rounded to two decimals, and a per-star breakdown.
func (s *Service) GetSummary(ctx context.Context, bookID uint) (*Summary, error) {
	summary, err := s.store.Summarize(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize reviews: %w", err)
	}

	summary.AverageRating = math.Round(summary.AverageRating*100) / 100
	if summary.Breakdown == nil {
		summary.Breakdown = map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	}

	return summary, nil
}

// Private helper methods

func (s *Service) list(ctx context.Context, f ListFilter) (*ReviewListResponse, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	reviews, total, err := s.store.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}

	return &ReviewListResponse{
		Reviews: reviews,
		Total:   total,
		Page:    f.Page,
		Limit:   f.Limit,
	}, nil
}

func (s *Service) setStatus(ctx context.Context, actorID, id uint, status ReviewStatus) error {
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
	if err != nil || !isAdmin {
		return ErrForbidden
	}
	return nil
}
