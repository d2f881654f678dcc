// Package engine implements the Parsed-File abstraction: a byte buffer and
// its concrete syntax tree, kept in lockstep across edits.
package engine

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syntaxpresso/core-sub005/internal/model"
)

// Language abstracts the host-language grammar binding a File needs: a
// tree-sitter Language plus the file extension it owns. Kept minimal so
// internal/lang/java is the only package that names a concrete grammar.
type Language interface {
	SitterLanguage() *sitter.Language
	Extension() string
}

// File is the Parsed-File: it owns a source byte buffer and the CST parsed
// from it. Path is the on-disk location the file was loaded from, or empty
// for a file built from raw source text. PendingMove, when set, is honored
// on the next Save.
type File struct {
	lang        Language
	source      []byte
	tree        *sitter.Tree
	path        string
	pendingMove string
}

// NewFromSource builds a File from in-memory source text, not yet
// associated with a path on disk.
func NewFromSource(lang Language, source []byte) (*File, error) {
	f := &File{lang: lang, source: source}
	if err := f.parse(context.Background(), nil); err != nil {
		return nil, err
	}
	return f, nil
}

// NewFromPath reads path as UTF-8 source and parses it. Newline bytes are
// preserved bit-for-bit; no normalization is performed.
func NewFromPath(lang Language, path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.NotFound(fmt.Sprintf("file not found: %s", path))
		}
		return nil, model.IOFailure("failed to read file", err)
	}
	f := &File{lang: lang, source: data, path: path}
	if err := f.parse(context.Background(), nil); err != nil {
		return nil, err
	}
	return f, nil
}

// NewFromPathOrSource parses path's content, or override (when non-nil)
// in its place — the file still carries path for containment checks and
// saving. Used by commands that accept an optional base64-decoded source
// override so a caller can operate on unsaved editor content against a
// file that already exists on disk.
func NewFromPathOrSource(lang Language, path string, override []byte) (*File, error) {
	if override != nil {
		f := &File{lang: lang, source: override, path: path}
		if err := f.parse(context.Background(), nil); err != nil {
			return nil, err
		}
		return f, nil
	}
	return NewFromPath(lang, path)
}

func (f *File) parse(ctx context.Context, oldTree *sitter.Tree) error {
	parser := sitter.NewParser()
	parser.SetLanguage(f.lang.SitterLanguage())
	tree, err := parser.ParseCtx(ctx, oldTree, f.source)
	if err != nil {
		return model.IOFailure("failed to parse source", err)
	}
	f.tree = tree
	return nil
}

// Root returns the CST root node.
func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}

// Language returns the grammar binding this file was parsed with.
func (f *File) Language() Language {
	return f.lang
}

// Source returns the current byte buffer. Callers must not mutate it.
func (f *File) Source() []byte {
	return f.source
}

// Path returns the on-disk path this file was loaded from, or "" if the
// file has never been saved.
func (f *File) Path() string {
	return f.path
}

// TextOfNode slices the current buffer at the node's byte range.
func (f *File) TextOfNode(n *sitter.Node) string {
	return string(f.source[n.StartByte():n.EndByte()])
}

// ReplaceRange splices replacement into [start, end) of the buffer and
// re-parses, passing the prior tree and an edit hint so the parser can
// reuse unaffected subtrees.
func (f *File) ReplaceRange(start, end int, replacement []byte) error {
	if start < 0 || end > len(f.source) || start > end {
		return model.InvalidInput("range", fmt.Sprintf("byte range [%d,%d) out of bounds", start, end))
	}
	oldStartPoint := pointAt(f.source, start)
	oldEndPoint := pointAt(f.source, end)
	newSource := splice(f.source, start, end, replacement)
	newEndByte := start + len(replacement)
	newEndPoint := pointAt(newSource, newEndByte)

	f.tree.Edit(sitter.EditInput{
		StartIndex:  uint32(start),
		OldEndIndex: uint32(end),
		NewEndIndex: uint32(newEndByte),
		StartPoint:  oldStartPoint,
		OldEndPoint: oldEndPoint,
		NewEndPoint: newEndPoint,
	})
	f.source = newSource
	return f.parse(context.Background(), f.tree)
}

// ReplaceNode replaces n's current byte range with replacement.
func (f *File) ReplaceNode(n *sitter.Node, replacement []byte) error {
	return f.ReplaceRange(int(n.StartByte()), int(n.EndByte()), replacement)
}

// InsertBefore inserts text at n's start byte, pushing n and everything
// after it forward.
func (f *File) InsertBefore(n *sitter.Node, text []byte) error {
	start := int(n.StartByte())
	return f.ReplaceRange(start, start, text)
}

// InsertAfter inserts text at n's end byte.
func (f *File) InsertAfter(n *sitter.Node, text []byte) error {
	end := int(n.EndByte())
	return f.ReplaceRange(end, end, text)
}

// NodeAt returns the smallest named descendant whose point range covers
// the 1-based (line, column) position, or an error if the position lies
// outside the tree.
func (f *File) NodeAt(line, column int) (*sitter.Node, error) {
	if line < 1 || column < 1 {
		return nil, model.InvalidInput("position", "line and column are 1-based")
	}
	point := sitter.Point{Row: uint32(line - 1), Column: uint32(column - 1)}
	root := f.Root()
	if !pointWithin(root, point) {
		return nil, model.NotFound("position lies outside the file")
	}
	n := root
	for {
		next := smallestNamedChildContaining(n, point)
		if next == nil {
			return n, nil
		}
		n = next
	}
}

func smallestNamedChildContaining(n *sitter.Node, point sitter.Point) *sitter.Node {
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if pointWithin(child, point) {
			return child
		}
	}
	return nil
}

func pointWithin(n *sitter.Node, p sitter.Point) bool {
	start, end := n.StartPoint(), n.EndPoint()
	if p.Row < start.Row || (p.Row == start.Row && p.Column < start.Column) {
		return false
	}
	if p.Row > end.Row || (p.Row == end.Row && p.Column > end.Column) {
		return false
	}
	return true
}

// FindAncestor climbs parents of n until a node of the requested kind is
// found, or returns nil when the root is reached without a match.
func FindAncestor(n *sitter.Node, kind string) *sitter.Node {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if cur.Type() == kind {
			return cur
		}
	}
	return nil
}

func pointAt(source []byte, byteOffset int) sitter.Point {
	row, col := uint32(0), uint32(0)
	for i := 0; i < byteOffset && i < len(source); i++ {
		if source[i] == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}
	return sitter.Point{Row: row, Column: col}
}
