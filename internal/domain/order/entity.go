// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// OrderStatus represents the fulfillment state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is a known fulfillment state.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentMethod represents how an order is paid
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodWallet PaymentMethod = "wallet"
	PaymentMethodCard   PaymentMethod = "card"
)

// Valid reports whether the payment method is supported.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodWallet, PaymentMethodCard:
		return true
	}
	return false
}

// Address represents a shipping address embedded in an order
type Address struct {
	FullName   string `json:"full_name" gorm:"not null"`
	Line1      string `json:"line1" gorm:"not null"`
	Line2      string `json:"line2"`
	City       string `json:"city" gorm:"not null"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" gorm:"not null"`
	Country    string `json:"country" gorm:"not null"`
	Phone      string `json:"phone"`
}

// Order represents a placed order
type Order struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrderNumber    string         `json:"order_number" gorm:"uniqueIndex;not null"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	Status         OrderStatus    `json:"status" gorm:"default:'pending';index"`
	PaymentMethod  PaymentMethod  `json:"payment_method" gorm:"not null"`
	SubtotalAmount int64          `json:"subtotal_amount" gorm:"not null"`
	ShippingAmount int64          `json:"shipping_amount" gorm:"not null"`
	TotalAmount    int64          `json:"total_amount" gorm:"not null"`
	ShippingAddr   Address        `json:"shipping_address" gorm:"embedded;embeddedPrefix:shipping_"`
	Items          []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	StatusHistory  []StatusChange `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	ProcessedAt    *time.Time     `json:"processed_at,omitempty"`
	ShippedAt      *time.Time     `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a priced snapshot of a book at checkout time. Later
// catalog edits do not change it.
type OrderItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	BookID    uint      `json:"book_id" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Author    string    `json:"author" gorm:"not null"`
	Price     int64     `json:"price" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Total     int64     `json:"total" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// StatusChange records one step of an order's status history
type StatusChange struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	OrderID   uint        `json:"order_id" gorm:"not null;index"`
	Status    OrderStatus `json:"status" gorm:"not null"`
	Comment   string      `json:"comment"`
	CreatedAt time.Time   `json:"created_at"`
}

// TableName returns the table name for the StatusChange model
func (StatusChange) TableName() string {
	return "order_status_history"
}

// GenerateOrderNumber builds a human-readable order number from the
// order date and a per-day sequence.
func GenerateOrderNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("ORD-%s-%05d", t.Format("20060102"), seq)
}
