package question

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search keeps the questions whose text contains term, ignoring case.
// A blank term matches everything. Input order is preserved.
func Search(items []Question, term string) []Question {
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]Question, 0, len(items))
	for _, q := range items {
		if strings.Contains(fold.String(q.Question), needle) {
			out = append(out, q)
		}
	}
	return out
}
