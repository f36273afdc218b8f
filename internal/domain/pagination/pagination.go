package pagination

import "strconv"

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// ParsePage reads a 1-based page number. Absent, non-numeric and
// non-positive values all mean page 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate returns items[(page-1)*size : page*size], clamped to the slice.
// A page past the end yields an empty, non-nil slice.
func Paginate[T any](page, size int, items []T) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return []T{}
	}

	// (page-1)*size can overflow; compare against the page count first.
	pages := (len(items) + size - 1) / size
	if page > pages {
		return []T{}
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
