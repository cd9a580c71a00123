// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arcadiareads/bookstore-backend/internal/config"
	"github.com/arcadiareads/bookstore-backend/internal/domain/cart"
)

// CartSource exposes the cart operations checkout needs
type CartSource interface {
	Snapshot(ctx context.Context, owner string) (*cart.Cart, error)
	ClearCart(ctx context.Context, owner string) error
}

// Service handles order business logic
type Service struct {
	store Store
	carts CartSource
	users UserDirectory
	cfg   *config.Config
}

// NewService creates a new order service
func NewService(store Store, carts CartSource, users UserDirectory, cfg *config.Config) *Service {
	return &Service{
		store: store,
		carts: carts,
		users: users,
		cfg:   cfg,
	}
}

// CheckoutRequest represents a checkout submission
type CheckoutRequest struct {
	PaymentMethod   PaymentMethod `json:"payment_method" binding:"required"`
	ShippingAddress Address       `json:"shipping_address" binding:"required"`
}

// UpdateStatusRequest changes an order's fulfillment state
type UpdateStatusRequest struct {
	Status  OrderStatus `json:"status" binding:"required"`
	Comment string      `json:"comment"`
}

// OrderListResponse represents a paginated order listing
type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

// Checkout converts the user's cart into a pending order and clears the
// cart. The cart is left untouched if order creation fails.
func (s *Service) Checkout(ctx context.Context, userID uint, req *CheckoutRequest) (*Order, error) {
	if !req.PaymentMethod.Valid() {
		return nil, fmt.Errorf("unknown payment method: %s", req.PaymentMethod)
	}
	if err := validateAddress(&req.ShippingAddress); err != nil {
		return nil, err
	}

	owner := fmt.Sprintf("user:%d", userID)
	c, err := s.carts.Snapshot(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	subtotal := c.Subtotal()
	shipping := s.shippingFor(subtotal)

	now := time.Now()
	number, err := s.nextOrderNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	o := Order{
		OrderNumber:    number,
		UserID:         userID,
		Status:         OrderStatusPending,
		PaymentMethod:  req.PaymentMethod,
		SubtotalAmount: subtotal,
		ShippingAmount: shipping,
		TotalAmount:    subtotal + shipping,
		ShippingAddr:   req.ShippingAddress,
		Items:          make([]OrderItem, 0, len(c.Items)),
		StatusHistory: []StatusChange{
			{Status: OrderStatusPending, Comment: "Order placed"},
		},
	}

	for _, item := range c.Items {
		o.Items = append(o.Items, OrderItem{
			BookID:   item.BookID,
			Title:    item.Title,
			Author:   item.Author,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    item.Subtotal(),
		})
	}

	if err := s.store.Create(ctx, &o); err != nil {
		if !errors.Is(err, ErrDuplicateOrderNumber) {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		// a concurrent checkout claimed the sequence number; renumber
		// from the fresh count and retry once
		if o.OrderNumber, err = s.nextOrderNumber(ctx, now); err != nil {
			return nil, err
		}
		if err := s.store.Create(ctx, &o); err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
	}

	if err := s.carts.ClearCart(ctx, owner); err != nil {
		return nil, fmt.Errorf("order %s created but cart not cleared: %w", o.OrderNumber, err)
	}

	return &o, nil
}

// GetOrder returns an order to its owner or to an admin.
func (s *Service) GetOrder(ctx context.Context, actorID, id uint) (*Order, error) {
	o, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.UserID != actorID {
		isAdmin, err := s.users.IsAdmin(ctx, actorID)
		if err != nil || !isAdmin {
			return nil, ErrForbidden
		}
	}

	return o, nil
}

// ListUserOrders returns the caller's orders, newest first.
func (s *Service) ListUserOrders(ctx context.Context, userID uint, page, limit int) (*OrderListResponse, error) {
	return s.list(ctx, ListFilter{UserID: &userID, Page: page, Limit: limit})
}

// ListOrders returns all orders for the admin panel.
func (s *Service) ListOrders(ctx context.Context, actorID uint, f ListFilter) (*OrderListResponse, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.list(ctx, f)
}

// UpdateStatus moves an order to any valid status, stamps the matching
// timestamp and appends a history entry.
func (s *Service) UpdateStatus(ctx context.Context, actorID, id uint, req *UpdateStatusRequest) (*Order, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	if !req.Status.Valid() {
		return nil, fmt.Errorf("unknown order status: %s", req.Status)
	}

	o, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	o.Status = req.Status
	switch req.Status {
	case OrderStatusProcessing:
		o.ProcessedAt = &now
	case OrderStatusShipped:
		o.ShippedAt = &now
	case OrderStatusDelivered:
		o.DeliveredAt = &now
	}

	change := StatusChange{
		OrderID: o.ID,
		Status:  req.Status,
		Comment: req.Comment,
	}

	if err := s.store.SetStatus(ctx, o, &change); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return o, nil
}

// Private helper methods

func (s *Service) shippingFor(subtotal int64) int64 {
	if subtotal >= s.cfg.Checkout.FreeShippingThreshold {
		return 0
	}
	return s.cfg.Checkout.ShippingFlatRate
}

func (s *Service) nextOrderNumber(ctx context.Context, now time.Time) (string, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count, err := s.store.CountCreatedSince(ctx, startOfDay)
	if err != nil {
		return "", fmt.Errorf("failed to number order: %w", err)
	}
	return GenerateOrderNumber(now, count+1), nil
}

func (s *Service) list(ctx context.Context, f ListFilter) (*OrderListResponse, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	orders, total, err := s.store.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	return &OrderListResponse{
		Orders: orders,
		Total:  total,
		Page:   f.Page,
		Limit:  f.Limit,
	}, nil
}

func (s *Service) requireAdmin(ctx context.Context, actorID uint) error {
	isAdmin, err := s.users.IsAdmin(ctx, actorID)
	if err != nil || !isAdmin {
		return ErrForbidden
	}
	return nil
}

func validateAddress(a *Address) error {
	if a.FullName == "" || a.Line1 == "" || a.City == "" || a.PostalCode == "" || a.Country == "" {
		return fmt.Errorf("shipping address is incomplete")
	}
	return nil
}
