package query

import "errors"

var (
	errUnbalancedParen    = errors.New("query: unbalanced parentheses in predicate clause")
	errMalformedPredicate = errors.New("query: malformed predicate clause")
)
