package question

import "errors"

var (
	// ErrBadRequest marks malformed or missing input.
	ErrBadRequest = errors.New("bad request")
	// ErrNotFound marks an absent resource.
	ErrNotFound = errors.New("not found")
	// ErrUnprocessable marks a well-formed write the store rejected.
	ErrUnprocessable = errors.New("unprocessable")
	// ErrPoolExhausted is returned by a draw once every question in the pool was already served.
	ErrPoolExhausted = errors.New("no more questions")
	// ErrNoResults marks a query that ran but matched nothing. It also matches ErrNotFound,
	// so callers that do not care about the difference can check for ErrNotFound only.
	ErrNoResults error = noResultsError{}
)

type noResultsError struct{}

func (noResultsError) Error() string { return "no results" }

func (noResultsError) Is(target error) bool { return target == ErrNotFound }
