package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/mneis/alternative-communicator/internal/model"
)

// MemStore keeps the whole catalog in process memory. It is rebuilt from
// the embedded seed on every start; there is no delete operation, so id
// sequences only ever move forward and are never reused.
//
// Records are appended to slices in creation order, which gives the stable
// tie-break for display-order sorting for free.
type MemStore struct {
	mu sync.RWMutex

	categories []model.Category
	catIndex   map[int]int // category id → position in categories
	cards      []model.Card
	users      []model.User

	nextCategoryID int
	nextCardID     int
	nextUserID     int
}

var _ Catalog = (*MemStore)(nil)

// NewMemStore returns an empty store. Most callers want NewSeeded.
func NewMemStore() *MemStore {
	return &MemStore{
		catIndex:       make(map[int]int),
		nextCategoryID: 1,
		nextCardID:     1,
		nextUserID:     1,
	}
}

// NewSeeded returns a store populated with the built-in board content.
func NewSeeded() (*MemStore, error) {
	s := NewMemStore()
	if err := s.loadSeed(); err != nil {
		return nil, err
	}
	return s, nil
}

// ── Categories ───────────────────────────────────────────────────────────────

// ListCategories returns all categories sorted ascending by display order,
// ties broken by creation order.
func (s *MemStore) ListCategories(_ context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

func (s *MemStore) GetCategory(_ context.Context, id int) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.catIndex[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	c := s.categories[pos]
	return &c, nil
}

func (s *MemStore) CreateCategory(_ context.Context, in NewCategory) (*model.Category, error) {
	if in.Name == "" {
		return nil, invalid("name", "is required")
	}
	if in.Icon == "" {
		return nil, invalid("icon", "is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.Category{
		ID:             s.nextCategoryID,
		Name:           in.Name,
		NamePortuguese: in.NamePortuguese,
		Icon:           in.Icon,
		DisplayOrder:   in.DisplayOrder,
	}
	s.nextCategoryID++
	s.catIndex[c.ID] = len(s.categories)
	s.categories = append(s.categories, c)
	return &c, nil
}

// ── Cards ────────────────────────────────────────────────────────────────────

// ListCards returns every card without any defined order.
func (s *MemStore) ListCards(_ context.Context) ([]model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Card, len(s.cards))
	copy(out, s.cards)
	return out, nil
}

// ListCardsByCategory returns the cards of one category sorted ascending by
// display order, ties broken by creation order. An unknown category yields
// an empty list; existence checks belong to the API layer.
func (s *MemStore) ListCardsByCategory(_ context.Context, categoryID int) ([]model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Card, 0)
	for _, c := range s.cards {
		if c.CategoryID == categoryID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

func (s *MemStore) CreateCard(_ context.Context, in NewCard) (*model.Card, error) {
	if in.CategoryID <= 0 {
		return nil, invalid("categoryId", "is required")
	}
	if strings.TrimSpace(in.Label) == "" {
		return nil, invalid("label", "is required")
	}
	if strings.TrimSpace(in.LabelPortuguese) == "" {
		return nil, invalid("labelPortuguese", "is required")
	}
	if in.ImageURL == "" || !strings.HasPrefix(in.ImageURL, "http") {
		return nil, invalid("imageUrl", "must be a valid http(s) URL")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catIndex[in.CategoryID]; !ok {
		return nil, ErrCategoryNotFound
	}

	c := model.Card{
		ID:              s.nextCardID,
		CategoryID:      in.CategoryID,
		Label:           in.Label,
		LabelPortuguese: in.LabelPortuguese,
		ImageURL:        in.ImageURL,
		DisplayOrder:    in.DisplayOrder,
	}
	s.nextCardID++
	s.cards = append(s.cards, c)
	return &c, nil
}

// ── Users ────────────────────────────────────────────────────────────────────
// Present for schema completeness; no route is wired to these yet.

func (s *MemStore) GetUser(_ context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemStore) CreateUser(_ context.Context, in NewUser) (*model.User, error) {
	if in.Username == "" {
		return nil, invalid("username", "is required")
	}
	if in.Password == "" {
		return nil, invalid("password", "is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{
		ID:           s.nextUserID,
		Username:     in.Username,
		PasswordHash: string(hash),
	}
	s.nextUserID++
	s.users = append(s.users, u)
	return &u, nil
}
