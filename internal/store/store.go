// Package store owns the in-memory catalog: categories, cards, users, and
// the id sequences behind them. All validation and relational integrity
// checks on creation live here so that every consumer — the API, the seed
// loader, tests — sees the same contract.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mneis/alternative-communicator/internal/model"
)

// Catalog defines the storage operations the API layer depends on. Exactly
// one implementation exists (MemStore); the interface keeps handlers
// testable without standing up the full seeded store.
type Catalog interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int) (*model.Category, error)
	CreateCategory(ctx context.Context, in NewCategory) (*model.Category, error)

	ListCards(ctx context.Context) ([]model.Card, error)
	ListCardsByCategory(ctx context.Context, categoryID int) ([]model.Card, error)
	CreateCard(ctx context.Context, in NewCard) (*model.Card, error)

	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, in NewUser) (*model.User, error)
}

// NewCategory is the input for CreateCategory. The zero values of
// NamePortuguese and DisplayOrder are the documented defaults ("" and 0).
type NewCategory struct {
	Name           string
	NamePortuguese string
	Icon           string
	DisplayOrder   int
}

// NewCard is the input for CreateCard. Cards carry the user-facing content,
// so their contract is stricter than the category one: both labels must be
// non-blank and the image URL must be resolvable over http(s).
type NewCard struct {
	CategoryID      int
	Label           string
	LabelPortuguese string
	ImageURL        string
	DisplayOrder    int
}

// NewUser is the input for CreateUser. The password is hashed before it is
// stored.
type NewUser struct {
	Username string
	Password string
}

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")
)

// ValidationError reports a single violated constraint on a create input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
