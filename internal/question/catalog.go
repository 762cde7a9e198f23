package question

import "sort"

// SortCategories returns a copy of categories ordered by id.
func SortCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CategoryLabels maps category id to its display label.
func CategoryLabels(categories []Category) map[int]string {
	labels := make(map[int]string, len(categories))
	for _, c := range categories {
		labels[c.ID] = c.Type
	}
	return labels
}
