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

type CategoriesHandler struct{ catalog store.Catalog }

func NewCategoriesHandler(catalog store.Catalog) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalog}
}

// List GET /api/categories
func (h *CategoriesHandler) List(c *gin.Context) {
	cats, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing categories")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch categories"))
		return
	}
	c.JSON(http.StatusOK, cats)
}

// Get GET /api/categories/:id
func (h *CategoriesHandler) Get(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}
	cat, err := h.catalog.GetCategory(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Category not found"))
	case err != nil:
		log.Error().Err(err).Int("id", id).Msg("fetching category")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch category"))
	default:
		c.JSON(http.StatusOK, cat)
	}
}

// Create POST /api/categories
func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cat, err := h.catalog.CreateCategory(c.Request.Context(), store.NewCategory{
		Name:           req.Name,
		NamePortuguese: req.NamePortuguese,
		Icon:           req.Icon,
		DisplayOrder:   req.DisplayOrder,
	})
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, apierror.New("Validation error: "+verr.Error()))
	case err != nil:
		log.Error().Err(err).Msg("creating category")
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create category"))
	default:
		c.JSON(http.StatusCreated, cat)
	}
}
