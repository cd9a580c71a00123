// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arcadiareads/bookstore-backend/internal/domain/catalog"
	"github.com/arcadiareads/bookstore-backend/internal/domain/order"
	"github.com/arcadiareads/bookstore-backend/internal/domain/review"
	"github.com/arcadiareads/bookstore-backend/internal/domain/user"
	"github.com/arcadiareads/bookstore-backend/internal/pkg/auth"
)

// Migrate runs the schema migrations
func (db *DB) Migrate() error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&user.User{},
		&catalog.Book{},
		&review.Review{},
		&order.Order{},
		&order.OrderItem{},
		&order.StatusChange{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.createIndexes(); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

func (db *DB) createIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_books_status_category ON books(status, category)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_book_status ON reviews(book_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders(user_id, created_at DESC)",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}
	return nil
}

// Seed inserts the development fixtures: an admin account, a customer
// account and a starter catalog. Each insert is skipped when the row
// already exists.
func (db *DB) Seed(passwords *auth.PasswordManager) error {
	if err := db.seedUsers(passwords); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := db.seedBooks(); err != nil {
		return fmt.Errorf("failed to seed books: %w", err)
	}
	return nil
}

func (db *DB) seedUsers(passwords *auth.PasswordManager) error {
	seeds := []struct {
		name     string
		email    string
		password string
		role     user.Role
	}{
		{"Arcadia Admin", "admin@arcadiareads.com", "admin123!", user.RoleAdmin},
		{"Jane Reader", "jane@example.com", "password1", user.RoleCustomer},
	}

	for _, seed := range seeds {
		var count int64
		if err := db.Model(&user.User{}).Where("email = ?", seed.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hashed, err := passwords.HashPassword(seed.password)
		if err != nil {
			return err
		}

		u := user.User{
			Name:     seed.name,
			Email:    seed.email,
			Password: hashed,
			Role:     seed.role,
			IsActive: true,
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		logrus.WithField("email", seed.email).Info("Seeded user")
	}

	return nil
}

func (db *DB) seedBooks() error {
	var count int64
	if err := db.Model(&catalog.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	books := []catalog.Book{
		{
			Title:       "The Midnight Library",
			Author:      "Matt Haig",
			Description: "Between life and death there is a library, and within that library the shelves go on forever.",
			Category:    "Fiction",
			Price:       1599,
			Stock:       12,
			Year:        2020,
			Condition:   catalog.ConditionNew,
			Status:      catalog.BookStatusApproved,
		},
		{
			Title:       "Sapiens: A Brief History of Humankind",
			Author:      "Yuval Noah Harari",
			Description: "A sweeping narrative of human history, from the Stone Age to the present.",
			Category:    "History",
			Price:       2250,
			Stock:       8,
			Year:        2011,
			Condition:   catalog.ConditionNew,
			Status:      catalog.BookStatusApproved,
		},
		{
			Title:       "Dune",
			Author:      "Frank Herbert",
			Description: "The epic of Paul Atreides and the desert planet Arrakis.",
			Category:    "Science Fiction",
			Price:       1050,
			Stock:       20,
			Year:        1965,
			Condition:   catalog.ConditionGood,
			Status:      catalog.BookStatusApproved,
		},
		{
			Title:       "Educated",
			Author:      "Tara Westover",
			Description: "A memoir about a young girl who leaves her survivalist family and goes on to earn a PhD.",
			Category:    "Biography",
			Price:       1425,
			Stock:       5,
			Year:        2018,
			Condition:   catalog.ConditionLikeNew,
			Status:      catalog.BookStatusApproved,
		},
		{
			Title:       "The Pragmatic Programmer",
			Author:      "Andrew Hunt",
			Description: "Your journey to mastery, with timeless advice on software craftsmanship.",
			Category:    "Technology",
			Price:       3999,
			Stock:       7,
			Year:        1999,
			Condition:   catalog.ConditionAcceptable,
			Status:      catalog.BookStatusApproved,
		},
	}

	if err := db.Create(&books).Error; err != nil {
		return err
	}

	logrus.WithField("count", len(books)).Info("Seeded catalog")
	return nil
}
