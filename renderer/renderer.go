// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package renderer turns a syntax tree back into source text.
//
// Each node type tag maps to exactly one rule. A rule formats its node's
// attributes and recurses into any attribute that holds a child node.
package renderer

import (
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mdhender/jsrender"
)

// DefaultMaxDepth is the deepest a node may nest below the root.
const DefaultMaxDepth = 2048

type Renderer struct {
	maxDepth int
	logger   *log.Logger
	debug    bool
	verbose  bool
	rules    map[jsrender.Kind]rule
}

func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		maxDepth: DefaultMaxDepth,
		logger:   log.Default(),
		rules:    ruleTable(),
	}
	for _, option := range options {
		err := option(r)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render returns the source text for the tree rooted at root.
// Nothing is returned unless every node renders.
func (r *Renderer) Render(root *jsrender.Node) (string, error) {
	started := time.Now()
	if root == nil {
		return "", fmt.Errorf("render: %w", jsrender.ErrEmptyDocument)
	}

	w := &walker{Renderer: r}
	text, err := w.render(root, cursor{})
	if err != nil {
		return "", err
	}

	if r.verbose {
		r.logger.Printf("render: %s nodes: %s: in %v\n", humanize.Comma(int64(w.nodes)), humanize.Bytes(uint64(len(text))), time.Since(started))
	}

	return text, nil
}

// walker holds the state for a single pass over a tree.
type walker struct {
	*Renderer
	nodes int
}

// cursor locates a node in the tree.
type cursor struct {
	path  string
	depth int
}

func (c cursor) field(attr string) cursor {
	if c.path == "" {
		return cursor{path: attr, depth: c.depth + 1}
	}
	return cursor{path: c.path + "." + attr, depth: c.depth + 1}
}

func (c cursor) index(attr string, i int) cursor {
	next := c.field(attr)
	next.path = fmt.Sprintf("%s[%d]", next.path, i)
	return next
}

func (w *walker) render(n *jsrender.Node, at cursor) (string, error) {
	if at.depth >= w.maxDepth {
		return "", &jsrender.RenderError{Tag: n.Type, Path: at.path, Line: n.Line, Err: fmt.Errorf("%w (max depth %d)", jsrender.ErrRecursionLimit, w.maxDepth)}
	}
	fn, ok := w.rules[n.Type]
	if !ok {
		return "", &jsrender.RenderError{Tag: n.Type, Path: at.path, Line: n.Line, Err: jsrender.ErrUnknownTag}
	}
	if w.debug {
		w.logger.Printf("render: %4d: %-10s %s\n", at.depth, n.Type, at.path)
	}
	w.nodes++
	return fn(w, n, at)
}

// child renders a required child node stored in the attribute attr of parent.
func (w *walker) child(parent *jsrender.Node, at cursor, attr string, n *jsrender.Node) (string, error) {
	if n == nil {
		return "", missing(parent, at, attr)
	}
	return w.render(n, at.field(attr))
}

// children renders each node in parent's children, in order.
func (w *walker) children(parent *jsrender.Node, at cursor) ([]string, error) {
	list := make([]string, 0, len(parent.Children))
	for i, n := range parent.Children {
		if n == nil {
			return nil, missing(parent, at, fmt.Sprintf("children[%d]", i))
		}
		text, err := w.render(n, at.index("children", i))
		if err != nil {
			return nil, err
		}
		list = append(list, text)
	}
	return list, nil
}

func missing(n *jsrender.Node, at cursor, attr string) error {
	return &jsrender.RenderError{Tag: n.Type, Attr: attr, Path: at.path, Line: n.Line, Err: jsrender.ErrMissingAttribute}
}
