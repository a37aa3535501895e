package composer

import (
	"context"
	"errors"
	"testing"

	"github.com/mneis/alternative-communicator/internal/locale"
	"github.com/mneis/alternative-communicator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog serves a fixed two-category board.
type fakeCatalog struct {
	categories []model.Category
	cards      map[int][]model.Card
	err        error
}

func (f *fakeCatalog) Categories(_ context.Context) ([]model.Category, error) {
	return f.categories, f.err
}

func (f *fakeCatalog) CardsByCategory(_ context.Context, categoryID int) ([]model.Card, error) {
	return f.cards[categoryID], f.err
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: []model.Category{
			{ID: 1, Name: "Basic Needs", NamePortuguese: "Necessidades Básicas", DisplayOrder: 1},
			{ID: 2, Name: "Feelings", NamePortuguese: "Sentimentos", DisplayOrder: 2},
		},
		cards: map[int][]model.Card{
			1: {
				{ID: 1, CategoryID: 1, Label: "I want", LabelPortuguese: "Eu quero"},
				{ID: 2, CategoryID: 1, Label: "Water", LabelPortuguese: "Água"},
			},
			2: {
				{ID: 20, CategoryID: 2, Label: "Happy", LabelPortuguese: "Feliz"},
			},
		},
	}
}

func TestLoadCategoriesSelectsFirst(t *testing.T) {
	m := New(newFakeCatalog())
	require.Equal(t, 0, m.SelectedCategory())

	cats, err := m.LoadCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, 1, m.SelectedCategory())
}

func TestLoadCategoriesKeepsUserSelection(t *testing.T) {
	m := New(newFakeCatalog())
	ctx := context.Background()

	_, err := m.LoadCategories(ctx)
	require.NoError(t, err)
	_, err = m.SelectCategory(ctx, 2)
	require.NoError(t, err)

	// A refetch must not snap the selection back to the first tab.
	_, err = m.LoadCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, m.SelectedCategory())
}

func TestLoadCategoriesError(t *testing.T) {
	api := newFakeCatalog()
	api.err = errors.New("server unreachable")
	m := New(api)

	_, err := m.LoadCategories(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, m.SelectedCategory())
}

func TestComposeMessage(t *testing.T) {
	api := newFakeCatalog()
	m := New(api)
	ctx := context.Background()

	_, err := m.LoadCategories(ctx)
	require.NoError(t, err)
	cards, err := m.SelectCategory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	m.AppendCard(cards[0]) // I want
	m.AppendCard(cards[1]) // Water

	assert.Equal(t, "I want Water", m.ComposedText())
	assert.Len(t, m.Selected(), 2)
}

func TestComposedTextLocaleFallback(t *testing.T) {
	m := New(newFakeCatalog())
	m.AppendCard(model.Card{ID: 1, Label: "I want", LabelPortuguese: "Eu quero"})
	m.AppendCard(model.Card{ID: 2, Label: "Water", LabelPortuguese: ""})

	m.SetLocale(locale.Portuguese)
	// The card without a Portuguese label falls back to the primary one.
	assert.Equal(t, "Eu quero Water", m.ComposedText())

	m.SetLocale(locale.English)
	assert.Equal(t, "I want Water", m.ComposedText())
}

func TestDuplicateCardsAllowed(t *testing.T) {
	m := New(newFakeCatalog())
	card := model.Card{ID: 2, Label: "Water", LabelPortuguese: "Água"}

	m.AppendCard(card)
	m.AppendCard(card)

	assert.Equal(t, "Water Water", m.ComposedText())
}

func TestSwitchingCategoryKeepsMessage(t *testing.T) {
	m := New(newFakeCatalog())
	ctx := context.Background()

	_, err := m.LoadCategories(ctx)
	require.NoError(t, err)
	m.AppendCard(model.Card{ID: 2, Label: "Water", LabelPortuguese: "Água"})

	_, err = m.SelectCategory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Water", m.ComposedText())
}

func TestClear(t *testing.T) {
	m := New(newFakeCatalog())
	m.AppendCard(model.Card{ID: 2, Label: "Water", LabelPortuguese: "Água"})

	m.Clear()

	assert.Empty(t, m.Selected())
	assert.Equal(t, "", m.ComposedText())
}

func TestSelectedReturnsCopy(t *testing.T) {
	m := New(newFakeCatalog())
	m.AppendCard(model.Card{ID: 2, Label: "Water", LabelPortuguese: "Água"})

	got := m.Selected()
	got[0].Label = "tampered"

	assert.Equal(t, "Water", m.Selected()[0].Label)
}
