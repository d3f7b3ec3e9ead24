package model

// Store is a named classification rule: a regex pattern that assigns
// matching expenses to a category.
type Store struct {
	ID         int64
	Name       string
	Pattern    string // case-insensitive regex, matched anywhere in the payee text
	CategoryID int64
}
