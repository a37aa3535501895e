package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────
// Responses use the model types directly; their JSON tags are the wire shape.

// CreateCategoryRequest mirrors POST /api/categories. namePortuguese and
// displayOrder are optional and default to "" / 0.
type CreateCategoryRequest struct {
	Name           string `json:"name"           validate:"required"`
	NamePortuguese string `json:"namePortuguese"`
	Icon           string `json:"icon"           validate:"required"`
	DisplayOrder   int    `json:"displayOrder"`
}

// CreateCardRequest mirrors POST /api/cards. The card contract is stricter
// than the category one: both labels and an http(s) image URL are required.
type CreateCardRequest struct {
	CategoryID      int    `json:"categoryId"      validate:"required,gt=0"`
	Label           string `json:"label"           validate:"required"`
	LabelPortuguese string `json:"labelPortuguese" validate:"required"`
	ImageURL        string `json:"imageUrl"        validate:"required,startswith=http"`
	DisplayOrder    int    `json:"displayOrder"`
}
