package model

// Card is one tappable image-labeled message unit. A card belongs to exactly
// one category, fixed at creation time.
type Card struct {
	ID              int    `json:"id"`
	CategoryID      int    `json:"categoryId"`
	Label           string `json:"label"`
	LabelPortuguese string `json:"labelPortuguese"`
	ImageURL        string `json:"imageUrl"`
	DisplayOrder    int    `json:"displayOrder"`
}
