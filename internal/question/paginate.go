package question

import "sort"

// SortByID returns a copy of items ordered by id ascending.
func SortByID(items []Question) []Question {
	out := make([]Question, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Paginate returns the 1-based page of items, clipped to bounds. Pages outside the
// collection yield an empty slice. The result never aliases items.
func Paginate(items []Question, page, pageSize int) []Question {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		return []Question{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []Question{}
	}
	end := min(start+pageSize, len(items))

	out := make([]Question, end-start)
	copy(out, items[start:end])
	return out
}
