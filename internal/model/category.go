package model

// Category groups stores for reporting purposes.
type Category struct {
	ID   int64
	Name string
}

// UnclassifiedCategory is the sentinel category name used in reports for
// expenses that no store rule has matched yet.
const UnclassifiedCategory = "None"
