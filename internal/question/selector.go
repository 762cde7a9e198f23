package question

import "math/rand/v2"

// Selector draws quiz questions a session has not seen yet.
type Selector struct {
	intn func(n int) int
}

// NewSelector returns a Selector backed by math/rand/v2.
func NewSelector() *Selector {
	return &Selector{intn: rand.IntN}
}

// NewSelectorWithSource lets callers supply the uniform [0, n) generator.
func NewSelectorWithSource(intn func(n int) int) *Selector {
	if intn == nil {
		intn = rand.IntN
	}
	return &Selector{intn: intn}
}

// PreviousSet builds the lookup set for Draw.
func PreviousSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Draw picks one question from pool uniformly among those whose id is not in previous.
// An empty pool returns ErrNoResults; a pool whose ids are all in previous returns
// ErrPoolExhausted. Neither argument is modified.
func (s *Selector) Draw(pool []Question, previous map[int]struct{}) (Question, error) {
	if len(pool) == 0 {
		return Question{}, ErrNoResults
	}

	eligible := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, seen := previous[q.ID]; !seen {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return Question{}, ErrPoolExhausted
	}
	return eligible[s.intn(len(eligible))], nil
}
