// internal/domain/review/entity.go
package review

import (
	"time"

	"gorm.io/gorm"
)

// ReviewStatus represents the moderation state of a review
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Valid reports whether the status is a known moderation state.
func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// Review represents a customer review of a book
type Review struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	BookID    uint           `json:"book_id" gorm:"not null;index"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	UserName  string         `json:"user_name" gorm:"not null"`
	Rating    int            `json:"rating" gorm:"not null"`
	Comment   string         `json:"comment" gorm:"type:text"`
	Status    ReviewStatus   `json:"status" gorm:"default:'pending';index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

// IsApproved reports whether the review is publicly visible.
func (r *Review) IsApproved() bool {
	return r.Status == ReviewStatusApproved
}

// Summary aggregates the approved reviews of a book
type Summary struct {
	BookID        uint        `json:"book_id"`
	ReviewCount   int64       `json:"review_count"`
	AverageRating float64     `json:"average_rating"`
	Breakdown     map[int]int `json:"breakdown"`
}
