package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arcadiareads/bookstore-backend/internal/domain/cart"
)

type CartStoreMock struct{ mock.Mock }

func (m *CartStoreMock) Get(ctx context.Context, owner string) (*cart.Cart, error) {
	args := m.Called(ctx, owner)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *CartStoreMock) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CartStoreMock) Delete(ctx context.Context, owner string) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

type CartBooksMock struct{ mock.Mock }

func (m *CartBooksMock) GetApprovedBook(ctx context.Context, bookID uint) (*cart.BookInfo, error) {
	args := m.Called(ctx, bookID)
	b, _ := args.Get(0).(*cart.BookInfo)
	return b, args.Error(1)
}

func emptyCart(owner string) *cart.Cart {
	return &cart.Cart{Owner: owner, Items: []cart.Item{}}
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	books := new(CartBooksMock)
	svc := cart.NewService(store, books)

	books.On("GetApprovedBook", mock.Anything, uint(7)).Return(&cart.BookInfo{
		ID: 7, Title: "Dune", Author: "Frank Herbert", Price: 1050,
	}, nil)
	store.On("Get", mock.Anything, "user:1").Return(emptyCart("user:1"), nil)
	store.On("Save", mock.Anything, mock.MatchedBy(func(c *cart.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].BookID == 7 && c.Items[0].Quantity == 2
	})).Return(nil)

	resp, err := svc.AddItem(ctx, "user:1", &cart.AddItemRequest{BookID: 7, Quantity: 2})
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.ItemCount)
	assert.Equal(t, int64(2100), resp.Subtotal)
	store.AssertExpectations(t)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	books := new(CartBooksMock)
	svc := cart.NewService(store, books)

	existing := &cart.Cart{Owner: "user:1", Items: []cart.Item{
		{BookID: 7, Title: "Dune", Price: 1050, Quantity: 2},
	}}

	books.On("GetApprovedBook", mock.Anything, uint(7)).Return(&cart.BookInfo{
		ID: 7, Title: "Dune", Price: 1050,
	}, nil)
	store.On("Get", mock.Anything, "user:1").Return(existing, nil)
	store.On("Save", mock.Anything, mock.MatchedBy(func(c *cart.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].Quantity == 5
	})).Return(nil)

	resp, err := svc.AddItem(ctx, "user:1", &cart.AddItemRequest{BookID: 7, Quantity: 3})
	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	store.AssertExpectations(t)
}

func TestCartService_AddItem_MergeRefreshesPrice(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	books := new(CartBooksMock)
	svc := cart.NewService(store, books)

	// line added before an admin price change
	existing := &cart.Cart{Owner: "user:1", Items: []cart.Item{
		{BookID: 7, Title: "Dune", Price: 1050, Quantity: 1},
	}}

	books.On("GetApprovedBook", mock.Anything, uint(7)).Return(&cart.BookInfo{
		ID: 7, Title: "Dune", Price: 2000,
	}, nil)
	store.On("Get", mock.Anything, "user:1").Return(existing, nil)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.AddItem(ctx, "user:1", &cart.AddItemRequest{BookID: 7, Quantity: 1})
	assert.NoError(t, err)
	assert.Equal(t, int64(2000), resp.Items[0].Price)
	assert.Equal(t, int64(4000), resp.Subtotal)
}

func TestCartService_AddItem_DefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	books := new(CartBooksMock)
	svc := cart.NewService(store, books)

	books.On("GetApprovedBook", mock.Anything, uint(7)).Return(&cart.BookInfo{ID: 7, Price: 1050}, nil)
	store.On("Get", mock.Anything, "session:abc").Return(emptyCart("session:abc"), nil)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.AddItem(ctx, "session:abc", &cart.AddItemRequest{BookID: 7})
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.ItemCount)
}

func TestCartService_AddItem_UnavailableBook(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	books := new(CartBooksMock)
	svc := cart.NewService(store, books)

	books.On("GetApprovedBook", mock.Anything, uint(99)).Return(nil, cart.ErrBookUnavailable)

	_, err := svc.AddItem(ctx, "user:1", &cart.AddItemRequest{BookID: 99, Quantity: 1})
	assert.ErrorIs(t, err, cart.ErrBookUnavailable)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_UpdateQuantity_SetsNewQuantity(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	svc := cart.NewService(store, new(CartBooksMock))

	existing := &cart.Cart{Owner: "user:1", Items: []cart.Item{
		{BookID: 7, Price: 1050, Quantity: 2},
	}}

	store.On("Get", mock.Anything, "user:1").Return(existing, nil)
	store.On("Save", mock.Anything, mock.MatchedBy(func(c *cart.Cart) bool {
		return c.Items[0].Quantity == 4
	})).Return(nil)

	resp, err := svc.UpdateQuantity(ctx, "user:1", 7, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(4200), resp.Subtotal)
	store.AssertExpectations(t)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	svc := cart.NewService(store, new(CartBooksMock))

	existing := &cart.Cart{Owner: "user:1", Items: []cart.Item{
		{BookID: 7, Price: 1050, Quantity: 2},
		{BookID: 9, Price: 1599, Quantity: 1},
	}}

	store.On("Get", mock.Anything, "user:1").Return(existing, nil)
	store.On("Save", mock.Anything, mock.MatchedBy(func(c *cart.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].BookID == 9
	})).Return(nil)

	resp, err := svc.UpdateQuantity(ctx, "user:1", 7, 0)
	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	store.AssertExpectations(t)
}

func TestCartService_UpdateQuantity_NegativeRemovesLine(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	svc := cart.NewService(store, new(CartBooksMock))

	existing := &cart.Cart{Owner: "user:1", Items: []cart.Item{
		{BookID: 7, Price: 1050, Quantity: 2},
	}}

	store.On("Get", mock.Anything, "user:1").Return(existing, nil)
	store.On("Save", mock.Anything, mock.MatchedBy(func(c *cart.Cart) bool {
		return len(c.Items) == 0
	})).Return(nil)

	resp, err := svc.UpdateQuantity(ctx, "user:1", 7, -1)
	assert.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCartService_UpdateQuantity_MissingLine(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	svc := cart.NewService(store, new(CartBooksMock))

	store.On("Get", mock.Anything, "user:1").Return(emptyCart("user:1"), nil)

	_, err := svc.UpdateQuantity(ctx, "user:1", 7, 3)
	assert.ErrorIs(t, err, cart.ErrNotFound)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	svc := cart.NewService(store, new(CartBooksMock))

	existing := &cart.Cart{Owner: "user:1", Items: []cart.Item{
		{BookID: 7, Price: 1050, Quantity: 2},
	}}

	store.On("Get", mock.Anything, "user:1").Return(existing, nil)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.RemoveItem(ctx, "user:1", 7)
	assert.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(0), resp.Subtotal)
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.Background()
	store := new(CartStoreMock)
	svc := cart.NewService(store, new(CartBooksMock))

	store.On("Delete", mock.Anything, "user:1").Return(nil)

	err := svc.ClearCart(ctx, "user:1")
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestCart_Totals(t *testing.T) {
	c := cart.Cart{Items: []cart.Item{
		{BookID: 1, Price: 1050, Quantity: 2},
		{BookID: 2, Price: 450, Quantity: 1},
	}}

	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, int64(2550), c.Subtotal())
	assert.False(t, c.IsEmpty())
	assert.True(t, (&cart.Cart{}).IsEmpty())
}
