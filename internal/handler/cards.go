package handler

import (
	"errors"
	"net/http"

	"github.com/mneis/alternative-communicator/internal/apierror"
	"github.com/mneis/alternative-communicator/internal/dto"
	"github.com/mneis/alternative-communicator/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CardsHandler struct{ catalog store.Catalog }

func NewCardsHandler(catalog store.Catalog) *CardsHandler {
	return &CardsHandler{catalog: catalog}
}

// List GET /api/cards
func (h *CardsHandler) List(c *gin.Context) {
	cards, err := h.catalog.ListCards(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing cards")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch cards"))
		return
	}
	c.JSON(http.StatusOK, cards)
}

// ListByCategory GET /api/categories/:id/cards
func (h *CardsHandler) ListByCategory(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	// The category must exist; an empty card list is not a 404.
	if _, err := h.catalog.GetCategory(ctx, id); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Category not found"))
			return
		}
		log.Error().Err(err).Int("id", id).Msg("fetching category for cards")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch cards for category"))
		return
	}

	cards, err := h.catalog.ListCardsByCategory(ctx, id)
	if err != nil {
		log.Error().Err(err).Int("id", id).Msg("listing cards by category")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch cards for category"))
		return
	}
	c.JSON(http.StatusOK, cards)
}

// Create POST /api/cards
func (h *CardsHandler) Create(c *gin.Context) {
	var req dto.CreateCardRequest
	if !bindAndValidate(c, &req) {
		return
	}
	card, err := h.catalog.CreateCard(c.Request.Context(), store.NewCard{
		CategoryID:      req.CategoryID,
		Label:           req.Label,
		LabelPortuguese: req.LabelPortuguese,
		ImageURL:        req.ImageURL,
		DisplayOrder:    req.DisplayOrder,
	})
	var verr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Category not found"))
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, apierror.New("Validation error: "+verr.Error()))
	case err != nil:
		log.Error().Err(err).Msg("creating card")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create card"))
	default:
		c.JSON(http.StatusCreated, card)
	}
}
