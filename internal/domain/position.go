package domain

// Position is an electable office with its own candidate slate. The catalog
// is seeded in code at startup and is never mutated at runtime.
type Position struct {
	ID          string `json:"id"`
	TitleBn     string `json:"title_bn"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
