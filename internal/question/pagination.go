package question

import "strconv"

// PageFromQuery parses a 1-based page number, falling back to 1 for absent,
// unparsable or non-positive input.
func PageFromQuery(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns items[(page-1)*pageSize : page*pageSize] clipped to the
// bounds of items. Pages past the end yield an empty, non-nil slice.
func Paginate[T any](page int, items []T, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = PageSize
	}
	if page-1 > len(items)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
