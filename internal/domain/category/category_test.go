package category_test

import (
	"errors"
	"testing"

	"github.com/trivia-api/backend/internal/domain/category"
)

func seededDirectory() *category.Directory {
	return category.NewDirectory([]*category.Category{
		{ID: 3, Type: "Geography"},
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	})
}

func TestDirectoryGet(t *testing.T) {
	d := seededDirectory()

	cat, err := d.Get(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Type != "Art" {
		t.Errorf("expected type %q, got %q", "Art", cat.Type)
	}
}

func TestDirectoryGet_NotFound(t *testing.T) {
	d := seededDirectory()

	_, err := d.Get(42)
	if !errors.Is(err, category.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDirectoryTypes(t *testing.T) {
	types := seededDirectory().Types()

	if len(types) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(types))
	}
	if types["1"] != "Science" {
		t.Errorf("expected id 1 to map to Science, got %q", types["1"])
	}
}

func TestDirectoryList_OrderedByID(t *testing.T) {
	cats := seededDirectory().List()

	for i, want := range []int{1, 2, 3} {
		if cats[i].ID != want {
			t.Errorf("position %d: expected id %d, got %d", i, want, cats[i].ID)
		}
	}
}

func TestEmptyDirectory(t *testing.T) {
	d := category.NewDirectory(nil)

	if d.Len() != 0 {
		t.Errorf("expected empty directory, got %d", d.Len())
	}
	if types := d.Types(); types == nil || len(types) != 0 {
		t.Errorf("expected empty non-nil map, got %v", types)
	}
}
