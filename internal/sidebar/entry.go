// Package sidebar builds and queries per-locale sidebar navigation trees.
//
// A sidebar is authored as a loosely typed sequence mixing route strings and
// nested objects. Builder turns that into a tree of the two concrete entry
// kinds, Leaf and Group, so every consumer handles both with a type switch
// instead of inspecting raw shapes.
package sidebar

import (
	"encoding/json"

	"github.com/ChrisShen93/xstate/internal/locale"
)

// Entry is a sidebar node: either a Leaf or a *Group.
type Entry interface {
	isEntry()
}

// Leaf links to a single page.
type Leaf struct {
	// Route is the normalized route used for matching and duplicate detection.
	Route string
	// Link is the route as authored ("packages/xstate-react/").
	Link string
	// Title overrides the page title in the sidebar when set.
	Title string
	// External marks links that leave the site; they are never active.
	External bool
}

// Group is a titled, ordered list of entries. Groups nest to any depth.
type Group struct {
	Title       string
	Collapsible bool
	Children    []Entry
}

func (Leaf) isEntry()   {}
func (*Group) isEntry() {}

// MarshalJSON encodes the leaf with a type discriminator.
func (l Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string `json:"type"`
		Route    string `json:"route"`
		Link     string `json:"link,omitempty"`
		Title    string `json:"title,omitempty"`
		External bool   `json:"external,omitempty"`
	}{"leaf", l.Route, l.Link, l.Title, l.External})
}

// MarshalJSON encodes the group with a type discriminator.
func (g *Group) MarshalJSON() ([]byte, error) {
	children := g.Children
	if children == nil {
		children = []Entry{}
	}
	return json.Marshal(struct {
		Type        string  `json:"type"`
		Title       string  `json:"title"`
		Collapsible bool    `json:"collapsible"`
		Children    []Entry `json:"children"`
	}{"group", g.Title, g.Collapsible, children})
}

// Tree is the sidebar of one locale.
type Tree struct {
	Locale locale.Locale `json:"locale"`
	Roots  []Entry       `json:"roots"`
}

// Empty reports whether the tree has no entries.
func (t *Tree) Empty() bool {
	return t == nil || len(t.Roots) == 0
}

// Walk visits entries depth-first in declared order. depth is 1 for roots.
// Returning false from fn skips the children of a group.
func Walk(entries []Entry, fn func(e Entry, depth int) bool) {
	walk(entries, 1, fn)
}

func walk(entries []Entry, depth int, fn func(Entry, int) bool) {
	for _, e := range entries {
		descend := fn(e, depth)
		if g, ok := e.(*Group); ok && descend {
			walk(g.Children, depth+1, fn)
		}
	}
}

// Leaves returns every leaf in declared order.
func (t *Tree) Leaves() []Leaf {
	if t == nil {
		return nil
	}
	var leaves []Leaf
	Walk(t.Roots, func(e Entry, _ int) bool {
		if l, ok := e.(Leaf); ok {
			leaves = append(leaves, l)
		}
		return true
	})
	return leaves
}

// Routes returns the normalized routes of all internal leaves in declared order.
func (t *Tree) Routes() []string {
	var routes []string
	for _, l := range t.Leaves() {
		if !l.External {
			routes = append(routes, l.Route)
		}
	}
	return routes
}

// Find returns the first internal leaf matching path.
func (t *Tree) Find(path string) (Leaf, bool) {
	crumbs := Breadcrumb(t, path)
	if len(crumbs) == 0 {
		return Leaf{}, false
	}
	l, ok := crumbs[len(crumbs)-1].(Leaf)
	return l, ok
}
