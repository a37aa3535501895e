package model

// Category groups communication cards into one board tab. The icon field is
// a symbolic glyph key resolved by the presentation layer; unrecognized keys
// render as a blank placeholder there, not here.
type Category struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	NamePortuguese string `json:"namePortuguese"`
	Icon           string `json:"icon"`
	DisplayOrder   int    `json:"displayOrder"`
}
