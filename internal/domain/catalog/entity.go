// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// BookStatus represents the moderation status of a book
type BookStatus string

const (
	BookStatusPending  BookStatus = "pending"
	BookStatusApproved BookStatus = "approved"
	BookStatusRejected BookStatus = "rejected"
)

// Valid reports whether the status is a known member of the enum.
func (s BookStatus) Valid() bool {
	switch s {
	case BookStatusPending, BookStatusApproved, BookStatusRejected:
		return true
	}
	return false
}

// Condition represents the physical condition of a book
type Condition string

const (
	ConditionNew        Condition = "New"
	ConditionLikeNew    Condition = "Like New"
	ConditionGood       Condition = "Good"
	ConditionAcceptable Condition = "Acceptable"
)

// Valid reports whether the condition is a known member of the enum.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionAcceptable:
		return true
	}
	return false
}

// Book represents a catalog record. Seller-submitted books start as
// pending; seeded books are approved at creation.
type Book struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null;size:255" json:"title"`
	Author      string         `gorm:"not null;size:255" json:"author"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"not null;size:100;index" json:"category"`
	ImageURL    string         `gorm:"size:500" json:"image_url"`
	Price       int64          `gorm:"not null" json:"price"` // Price in cents
	Stock       int            `gorm:"default:0" json:"stock"`
	Year        int            `json:"year"`
	Condition   Condition      `gorm:"size:20;default:'New'" json:"condition"`
	SellerID    *uint          `gorm:"index" json:"seller_id,omitempty"` // nil for catalog-seeded books
	Status      BookStatus     `gorm:"not null;default:'approved';size:20;index" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name for Book
func (Book) TableName() string {
	return "books"
}

// IsVisible reports whether the book may appear on public browsing surfaces.
func (b *Book) IsVisible() bool {
	return b.Status == BookStatusApproved
}

// IsInStock reports whether the book can currently be purchased.
func (b *Book) IsInStock() bool {
	return b.Stock > 0
}

// GetFormattedPrice returns the price in currency units.
func (b *Book) GetFormattedPrice() float64 {
	return float64(b.Price) / 100
}
