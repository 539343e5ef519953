package model

// A CategoryName identifies a category.
type CategoryName string

// A Category groups events by what they are, e.g. "work" or "sleep".
// Its priority ranks it against other categories when overlapping events
// have to be resolved to a single one.
type Category struct {
	Name       CategoryName
	Priority   int
	Goal       Goal
	Deprecated bool
}

// ByName is a slice of categories sortable by name.
type ByName []Category

func (a ByName) Len() int           { return len(a) }
func (a ByName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByName) Less(i, j int) bool { return a[i].Name < a[j].Name }
