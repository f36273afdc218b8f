package category

import (
	"errors"
	"sort"
	"strconv"
)

var ErrNotFound = errors.New("category not found")

// Category is a pre-seeded grouping of questions. Type is its display name.
type Category struct {
	ID   int    `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

// Directory is a snapshot of the category catalog keyed by ID.
// It is not refreshed; build a new one per request.
type Directory struct {
	byID map[int]*Category
}

// NewDirectory indexes cats. Later duplicates of an ID replace earlier ones.
func NewDirectory(cats []*Category) *Directory {
	d := &Directory{byID: make(map[int]*Category, len(cats))}
	for _, c := range cats {
		d.byID[c.ID] = c
	}
	return d
}

// Get returns the category with the given id, or ErrNotFound.
func (d *Directory) Get(id int) (*Category, error) {
	c, ok := d.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (d *Directory) Len() int {
	return len(d.byID)
}

// Types maps category id to display name. Keys are strings because the
// map is serialized as a JSON object.
func (d *Directory) Types() map[string]string {
	types := make(map[string]string, len(d.byID))
	for id, c := range d.byID {
		types[strconv.Itoa(id)] = c.Type
	}
	return types
}

// List returns the categories ordered by ID.
func (d *Directory) List() []*Category {
	cats := make([]*Category, 0, len(d.byID))
	for _, c := range d.byID {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].ID < cats[j].ID })
	return cats
}
