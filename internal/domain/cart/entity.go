// internal/domain/cart/entity.go
package cart

import "time"

// Item represents a single book line in a cart
type Item struct {
	BookID   uint      `json:"book_id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	ImageURL string    `json:"image_url"`
	Price    int64     `json:"price"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// Subtotal returns the line total in cents.
func (i *Item) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Cart is the shopping cart document stored in Redis, one per owner.
// Items keep insertion order and are unique per book.
type Cart struct {
	Owner     string    `json:"owner"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the cart subtotal in cents.
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, item := range c.Items {
		subtotal += item.Subtotal()
	}
	return subtotal
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// findItem returns the index of the line for bookID, or -1.
func (c *Cart) findItem(bookID uint) int {
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			return i
		}
	}
	return -1
}
