package query

import (
	"regexp"
	"strings"
)

// predicateKind is one of the eight extended predicates the query layer
// supports, beyond the six tree-sitter understands natively
// (#eq?/#not-eq?/#match?/#not-match?/#any-of?/#not-any-of?) this package
// also evaluates #contains? and #is?, neither of which tree-sitter defines.
// All eight are evaluated by this package uniformly rather than splitting
// six onto the native QueryCursor.FilterPredicates path and two onto a
// bespoke one — see DESIGN.md.
type predicateKind string

const (
	predEq        predicateKind = "eq?"
	predNotEq     predicateKind = "not-eq?"
	predMatch     predicateKind = "match?"
	predNotMatch  predicateKind = "not-match?"
	predAnyOf     predicateKind = "any-of?"
	predNotAnyOf  predicateKind = "not-any-of?"
	predContains  predicateKind = "contains?"
	predIs        predicateKind = "is?"
)

// predicate is one parsed "(#kind? @capture arg...)" clause.
type predicate struct {
	kind    predicateKind
	capture string
	args    []string
}

var predicateHead = regexp.MustCompile(`\(#([a-z-]+\?)\s*`)

// extractPredicates scans pattern for parenthesized "(#pred? ...)" clauses,
// removes each from the returned structural pattern, and returns the
// parsed predicates separately. Predicates are written as parenthesized
// siblings of the structural pattern, so removing the matched span
// (balanced on parens, aware of quoted strings) leaves a structurally
// valid pattern for sitter.NewQuery.
func extractPredicates(pattern string) (string, []predicate, error) {
	var preds []predicate
	out := pattern

	for {
		loc := predicateHead.FindStringSubmatchIndex(out)
		if loc == nil {
			break
		}
		start := loc[0]
		end, err := matchParen(out, start)
		if err != nil {
			return "", nil, err
		}
		clause := out[start : end+1]
		p, err := parsePredicateClause(clause)
		if err != nil {
			return "", nil, err
		}
		preds = append(preds, p)
		out = out[:start] + out[end+1:]
	}
	return out, preds, nil
}

// matchParen returns the index of the ')' that balances the '(' at start,
// skipping over parens that occur inside double-quoted strings.
func matchParen(s string, start int) (int, error) {
	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' && (i == 0 || s[i-1] != '\\'):
			inString = !inString
		case inString:
			continue
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, errUnbalancedParen
}

func parsePredicateClause(clause string) (predicate, error) {
	inner := strings.TrimSpace(clause[1 : len(clause)-1]) // drop outer ( )
	inner = strings.TrimPrefix(inner, "#")
	tokens, err := tokenize(inner)
	if err != nil {
		return predicate{}, err
	}
	if len(tokens) < 2 {
		return predicate{}, errMalformedPredicate
	}
	kind := predicateKind(tokens[0])
	capture := strings.TrimPrefix(tokens[1], "@")
	return predicate{kind: kind, capture: capture, args: tokens[2:]}, nil
}

// tokenize splits predicate-clause tokens on whitespace, keeping quoted
// strings intact (and stripping their surrounding quotes).
func tokenize(s string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inString := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' && (i == 0 || s[i-1] != '\\'):
			inString = !inString
		case c == ' ' || c == '\t' || c == '\n':
			if inString {
				cur.WriteByte(c)
			} else {
				flush()
			}
		case c == '\\' && inString && i+1 < len(s) && s[i+1] == '"':
			// escaped quote inside string literal, consumed on next iter
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	if inString {
		return nil, errMalformedPredicate
	}
	return tokens, nil
}
