package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arcadiareads/bookstore-backend/internal/domain/catalog"
)

type BookStoreMock struct{ mock.Mock }

func (m *BookStoreMock) Create(ctx context.Context, b *catalog.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BookStoreMock) FindByID(ctx context.Context, id uint) (*catalog.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*catalog.Book)
	return b, args.Error(1)
}

func (m *BookStoreMock) List(ctx context.Context, f catalog.ListFilter) ([]catalog.Book, int64, error) {
	args := m.Called(ctx, f)
	books, _ := args.Get(0).([]catalog.Book)
	return books, args.Get(1).(int64), args.Error(2)
}

func (m *BookStoreMock) SetStatus(ctx context.Context, id uint, status catalog.BookStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *BookStoreMock) UpdateStock(ctx context.Context, id uint, stock int) error {
	args := m.Called(ctx, id, stock)
	return args.Error(0)
}

func (m *BookStoreMock) UpdatePrice(ctx context.Context, id uint, price int64) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}

func (m *BookStoreMock) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]string)
	return categories, args.Error(1)
}

type UserDirectoryMock struct{ mock.Mock }

func (m *UserDirectoryMock) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func validSubmission() *catalog.SubmitBookRequest {
	return &catalog.SubmitBookRequest{
		Title:       "The Midnight Library",
		Author:      "Matt Haig",
		Description: "Between life and death there is a library.",
		Category:    "Fiction",
		Price:       1599,
		Stock:       3,
		Year:        2020,
	}
}

func TestCatalogService_ListBooks_ForcesApprovedStatus(t *testing.T) {
	ctx := context.Background()
	store := new(BookStoreMock)
	svc := catalog.NewService(store, new(UserDirectoryMock))

	store.On("List", mock.Anything, mock.MatchedBy(func(f catalog.ListFilter) bool {
		return f.Status != nil && *f.Status == catalog.BookStatusApproved
	})).Return([]catalog.Book{{ID: 1, Status: catalog.BookStatusApproved}}, int64(1), nil)

	resp, err := svc.ListBooks(ctx, catalog.ListFilter{Category: "Fiction"})
	assert.NoError(t, err)
	assert.Len(t, resp.Books, 1)
	assert.Equal(t, int64(1), resp.Pagination.Total)
	store.AssertExpectations(t)
}

func TestCatalogService_GetBook_PendingIsHidden(t *testing.T) {
	ctx := context.Background()
	store := new(BookStoreMock)
	svc := catalog.NewService(store, new(UserDirectoryMock))

	store.On("FindByID", mock.Anything, uint(5)).Return(&catalog.Book{
		ID: 5, Status: catalog.BookStatusPending,
	}, nil)

	_, err := svc.GetBook(ctx, 5)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCatalogService_GetBook_Approved(t *testing.T) {
	ctx := context.Background()
	store := new(BookStoreMock)
	svc := catalog.NewService(store, new(UserDirectoryMock))

	store.On("FindByID", mock.Anything, uint(5)).Return(&catalog.Book{
		ID: 5, Title: "Dune", Status: catalog.BookStatusApproved,
	}, nil)

	b, err := svc.GetBook(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, "Dune", b.Title)
}

func TestCatalogService_SubmitBook_CreatesPending(t *testing.T) {
	ctx := context.Background()
	store := new(BookStoreMock)
	svc := catalog.NewService(store, new(UserDirectoryMock))

	store.On("Create", mock.Anything, mock.MatchedBy(func(b *catalog.Book) bool {
		return b.Status == catalog.BookStatusPending &&
			b.SellerID != nil && *b.SellerID == 42 &&
			b.Condition == catalog.ConditionNew
	})).Return(nil)

	b, err := svc.SubmitBook(ctx, 42, validSubmission())
	assert.NoError(t, err)
	assert.Equal(t, catalog.BookStatusPending, b.Status)
	store.AssertExpectations(t)
}

func TestCatalogService_SubmitBook_Validation(t *testing.T) {
	ctx := context.Background()
	store := new(BookStoreMock)
	svc := catalog.NewService(store, new(UserDirectoryMock))

	cases := []struct {
		name    string
		mutate  func(*catalog.SubmitBookRequest)
		wantErr string
	}{
		{"missing title", func(r *catalog.SubmitBookRequest) { r.Title = "  " }, "title is required"},
		{"missing author", func(r *catalog.SubmitBookRequest) { r.Author = "" }, "author is required"},
		{"missing category", func(r *catalog.SubmitBookRequest) { r.Category = "" }, "category is required"},
		{"missing description", func(r *catalog.SubmitBookRequest) { r.Description = "" }, "description is required"},
		{"zero price", func(r *catalog.SubmitBookRequest) { r.Price = 0 }, "price must be positive"},
		{"negative price", func(r *catalog.SubmitBookRequest) { r.Price = -100 }, "price must be positive"},
		{"year too old", func(r *catalog.SubmitBookRequest) { r.Year = 1700 }, "year must be between"},
		{"year in future", func(r *catalog.SubmitBookRequest) { r.Year = time.Now().Year() + 1 }, "year must be between"},
		{"negative stock", func(r *catalog.SubmitBookRequest) { r.Stock = -1 }, "stock must not be negative"},
		{"bad condition", func(r *catalog.SubmitBookRequest) { r.Condition = "Mint" }, "unknown condition"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmission()
			tc.mutate(req)

			_, err := svc.SubmitBook(ctx, 42, req)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}

	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_ApproveBook(t *testing.T) {
	ctx := context.Background()
	store := new(BookStoreMock)
	users := new(UserDirectoryMock)
	svc := catalog.NewService(store, users)

	users.On("IsAdmin", mock.Anything, uint(1)).Return(true, nil)
	store.On("FindByID", mock.Anything, uint(5)).Return(&catalog.Book{
		ID: 5, Status: catalog.BookStatusPending,
	}, nil)
	store.On("SetStatus", mock.Anything, uint(5), catalog.BookStatusApproved).Return(nil)

	err := svc.ApproveBook(ctx, 1, 5)
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestCatalogService_ApproveBook_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := new(BookStoreMock)
	users := new(UserDirectoryMock)
	svc := catalog.NewService(store, users)

	users.On("IsAdmin", mock.Anything, uint(1)).Return(true, nil)
	store.On("FindByID", mock.Anything, uint(5)).Return(&catalog.Book{
		ID: 5, Status: catalog.BookStatusApproved,
	}, nil)
	store.On("SetStatus", mock.Anything, uint(5), catalog.BookStatusApproved).Return(nil)

	// Re-approving an approved book succeeds as an overwrite
	assert.NoError(t, svc.ApproveBook(ctx, 1, 5))
}

func TestCatalogService_RejectBook_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	store := new(BookStoreMock)
	users := new(UserDirectoryMock)
	svc := catalog.NewService(store, users)

	users.On("IsAdmin", mock.Anything, uint(2)).Return(false, nil)

	err := svc.RejectBook(ctx, 2, 5)
	assert.ErrorIs(t, err, catalog.ErrForbidden)
	store.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_UpdatePrice(t *testing.T) {
	ctx := context.Background()
	store := new(BookStoreMock)
	users := new(UserDirectoryMock)
	svc := catalog.NewService(store, users)

	users.On("IsAdmin", mock.Anything, uint(1)).Return(true, nil)
	store.On("UpdatePrice", mock.Anything, uint(5), int64(1299)).Return(nil)

	assert.NoError(t, svc.UpdatePrice(ctx, 1, 5, 1299))

	err := svc.UpdatePrice(ctx, 1, 5, 0)
	assert.ErrorContains(t, err, "price must be positive")
}

func TestCatalogService_UpdateStock_RejectsNegative(t *testing.T) {
	ctx := context.Background()
	store := new(BookStoreMock)
	users := new(UserDirectoryMock)
	svc := catalog.NewService(store, users)

	users.On("IsAdmin", mock.Anything, uint(1)).Return(true, nil)

	err := svc.UpdateStock(ctx, 1, 5, -3)
	assert.ErrorContains(t, err, "stock must not be negative")
	store.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
}
