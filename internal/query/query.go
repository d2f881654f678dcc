// Package query implements the CST pattern-matcher layer: a compiled
// tree-sitter query plus the engine's extended predicates, returning a
// fluent, de-duplicated result shape.
package query

import (
	"regexp"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// Match is one capture-name -> node mapping yielded by a Query run.
type Match map[string]*sitter.Node

// Query is an immutable compiled pattern plus its extended predicates.
// Grounded on the teacher's internal/matcher.ASTMatcher (compile once,
// run on any root), generalized with the predicate-stripping front end
// described in SPEC_FULL.md §4.2.
type Query struct {
	raw        string
	compiled   *sitter.Query
	predicates []predicate
	source     []byte
}

// Compile parses pattern's extended predicates, strips them, and compiles
// the remaining structural pattern against lang. The result is reusable
// across any number of Run calls (and any root), matching §4.2's "compiled
// once per execution" requirement.
func Compile(lang *sitter.Language, pattern string) (*Query, error) {
	structural, preds, err := extractPredicates(pattern)
	if err != nil {
		return nil, err
	}
	compiled, err := sitter.NewQuery([]byte(structural), lang)
	if err != nil {
		return nil, err
	}
	return &Query{raw: pattern, compiled: compiled, predicates: preds}, nil
}

// Result is the fluent outcome of running a Query. Run collects every
// match up front; the projections below are computed from that list.
type Result struct {
	query    *Query
	matches  []Match
	source   []byte
}

// Run executes the query against root, evaluating extended predicates
// against source (used to read capture text). roler resolves "#is?"
// predicates; pass nil to use DefaultRoler.
func (q *Query) Run(root *sitter.Node, source []byte, roler Roler) *Result {
	if roler == nil {
		roler = DefaultRoler
	}
	cursor := sitter.NewQueryCursor()
	cursor.Exec(q.compiled, root)

	var matches []Match
	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		captures := make(Match, len(m.Captures))
		for _, cap := range m.Captures {
			name := q.compiled.CaptureNameForId(cap.Index)
			node := cap.Node
			captures[name] = node
		}
		if q.satisfiesAll(captures, source, roler) {
			matches = append(matches, captures)
		}
	}
	return &Result{query: q, matches: matches, source: source}
}

func (q *Query) satisfiesAll(m Match, source []byte, roler Roler) bool {
	for _, p := range q.predicates {
		if !evaluate(p, m, source, roler) {
			return false
		}
	}
	return true
}

func captureText(m Match, source []byte, name string) (string, bool) {
	n, ok := m[name]
	if !ok || n == nil {
		return "", false
	}
	return string(source[n.StartByte():n.EndByte()]), true
}

func evaluate(p predicate, m Match, source []byte, roler Roler) bool {
	text, ok := captureText(m, source, p.capture)
	if !ok {
		return false
	}
	switch p.kind {
	case predEq:
		return len(p.args) > 0 && matchesLiteralOrCapture(p.args[0], text, m, source)
	case predNotEq:
		return !(len(p.args) > 0 && matchesLiteralOrCapture(p.args[0], text, m, source))
	case predMatch:
		return len(p.args) > 0 && regexMatches(p.args[0], text)
	case predNotMatch:
		return !(len(p.args) > 0 && regexMatches(p.args[0], text))
	case predAnyOf:
		return anyOf(p.args, text)
	case predNotAnyOf:
		return !anyOf(p.args, text)
	case predContains:
		return len(p.args) > 0 && containsSubstring(text, p.args[0])
	case predIs:
		if len(p.args) == 0 {
			return false
		}
		n := m[p.capture]
		return roler.Role(n) == p.args[0]
	default:
		return false
	}
}

func matchesLiteralOrCapture(arg, text string, m Match, source []byte) bool {
	if otherText, ok := captureTextIfCapture(arg, m, source); ok {
		return otherText == text
	}
	return arg == text
}

func captureTextIfCapture(arg string, m Match, source []byte) (string, bool) {
	if len(arg) == 0 || arg[0] != '@' {
		return "", false
	}
	return captureText(m, source, arg[1:])
}

func regexMatches(pattern, text string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

func anyOf(args []string, text string) bool {
	for _, a := range args {
		if a == text {
			return true
		}
	}
	return false
}

func containsSubstring(text, sub string) bool {
	return len(sub) == 0 || indexOf(text, sub) >= 0
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// primaryNode picks the node of the capture named "target" when the match
// has one, otherwise the largest-span non-auxiliary node in the match. The
// last capture written in the pattern gets no preference of its own.
func primaryNode(m Match) *sitter.Node {
	if n, ok := m["target"]; ok {
		return n
	}
	var best *sitter.Node
	for name, n := range m {
		if len(name) > 0 && name[0] == '_' {
			continue // auxiliary capture, conventionally prefixed "_"
		}
		if best == nil || (n.EndByte()-n.StartByte()) > (best.EndByte()-best.StartByte()) {
			best = n
		}
	}
	return best
}

// Nodes returns the primary node of every match, de-duplicated by byte
// range and sorted by start byte.
func (r *Result) Nodes() []*sitter.Node {
	seen := make(map[[2]uint32]bool)
	var out []*sitter.Node
	for _, m := range r.matches {
		n := primaryNode(m)
		if n == nil {
			continue
		}
		key := [2]uint32{n.StartByte(), n.EndByte()}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartByte() < out[j].StartByte() })
	return out
}

// Captures returns every match's full capture map.
func (r *Result) Captures() []Match {
	return r.matches
}

// FirstNode returns the first of Nodes() (the primary node with the
// smallest start byte), or nil.
func (r *Result) FirstNode() *sitter.Node {
	nodes := r.Nodes()
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// SingleNode returns the primary node when the matches yield exactly one
// distinct primary node, and ok=false otherwise.
func (r *Result) SingleNode() (*sitter.Node, bool) {
	nodes := r.Nodes()
	if len(nodes) != 1 {
		return nil, false
	}
	return nodes[0], true
}

// NodesFrom returns every match's node for captureName, de-duplicated and
// sorted by start byte; selecting a specific capture returns only that
// capture's nodes.
func (r *Result) NodesFrom(captureName string) []*sitter.Node {
	seen := make(map[[2]uint32]bool)
	var out []*sitter.Node
	for _, m := range r.matches {
		n, ok := m[captureName]
		if !ok || n == nil {
			continue
		}
		key := [2]uint32{n.StartByte(), n.EndByte()}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartByte() < out[j].StartByte() })
	return out
}

// Filter returns a new Result retaining only matches for which pred
// returns true.
func (r *Result) Filter(pred func(Match) bool) *Result {
	var kept []Match
	for _, m := range r.matches {
		if pred(m) {
			kept = append(kept, m)
		}
	}
	return &Result{query: r.query, matches: kept, source: r.source}
}

// Map applies fn to every match and returns the collected results.
func (r *Result) Map(fn func(Match) any) []any {
	out := make([]any, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, fn(m))
	}
	return out
}

// StreamNodes sends every primary node, in sorted order, to yield; it
// stops early if yield returns false.
func (r *Result) StreamNodes(yield func(*sitter.Node) bool) {
	for _, n := range r.Nodes() {
		if !yield(n) {
			return
		}
	}
}
