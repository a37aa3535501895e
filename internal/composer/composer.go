// Package composer holds the client-side message state: the selected
// category, the ordered list of tapped cards, and the active locale.
package composer

import (
	"context"
	"strings"

	"github.com/mneis/alternative-communicator/internal/locale"
	"github.com/mneis/alternative-communicator/internal/model"
)

// CatalogAPI is the slice of the catalog client the composer needs.
type CatalogAPI interface {
	Categories(ctx context.Context) ([]model.Category, error)
	CardsByCategory(ctx context.Context, categoryID int) ([]model.Card, error)
}

// SelectedCard is the projection of a tapped card kept in the message.
type SelectedCard struct {
	ID              int
	Label           string
	LabelPortuguese string
	ImageURL        string
}

// Composer models single-user board state; it is not safe for concurrent
// use. Card taps are user-paced and handled one at a time.
type Composer struct {
	api      CatalogAPI
	loc      locale.Locale
	category int // 0 = none selected
	selected []SelectedCard
}

func New(api CatalogAPI) *Composer {
	return &Composer{api: api, loc: locale.English}
}

// LoadCategories fetches the board tabs. On the first successful fetch, the
// first category in display order becomes the default selection — a policy,
// not a user action.
func (m *Composer) LoadCategories(ctx context.Context) ([]model.Category, error) {
	cats, err := m.api.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if m.category == 0 && len(cats) > 0 {
		m.category = cats[0].ID
	}
	return cats, nil
}

// SelectCategory switches the active tab and fetches its cards.
func (m *Composer) SelectCategory(ctx context.Context, id int) ([]model.Card, error) {
	m.category = id
	return m.api.CardsByCategory(ctx, id)
}

// SelectedCategory returns the active category id, 0 when none is selected.
func (m *Composer) SelectedCategory() int { return m.category }

// AppendCard adds a tapped card to the end of the message. Duplicates are
// allowed; the message is append-only until cleared.
func (m *Composer) AppendCard(card model.Card) {
	m.selected = append(m.selected, SelectedCard{
		ID:              card.ID,
		Label:           card.Label,
		LabelPortuguese: card.LabelPortuguese,
		ImageURL:        card.ImageURL,
	})
}

// Clear empties the accumulated message.
func (m *Composer) Clear() { m.selected = nil }

// SetLocale switches the rendering/speech language without touching the
// accumulated cards.
func (m *Composer) SetLocale(l locale.Locale) { m.loc = l }

func (m *Composer) Locale() locale.Locale { return m.loc }

// Selected returns a copy of the accumulated cards in tap order.
func (m *Composer) Selected() []SelectedCard {
	out := make([]SelectedCard, len(m.selected))
	copy(out, m.selected)
	return out
}

// ComposedText joins the active-locale label of every selected card with
// spaces, falling back per card to the primary label when the Portuguese
// one is empty.
func (m *Composer) ComposedText() string {
	parts := make([]string, len(m.selected))
	for i, card := range m.selected {
		parts[i] = locale.LabelFor(card.Label, card.LabelPortuguese, m.loc)
	}
	return strings.Join(parts, " ")
}
