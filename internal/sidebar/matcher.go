package sidebar

import "github.com/ChrisShen93/xstate/internal/route"

// IsActive reports whether entry matches currentPath. A leaf is active when
// its route equals the path after normalization; a group is active when any
// descendant leaf is.
func IsActive(entry Entry, currentPath string) bool {
	return isActive(entry, route.Normalize(currentPath))
}

func isActive(entry Entry, p string) bool {
	switch e := entry.(type) {
	case Leaf:
		return !e.External && e.Route == p
	case *Group:
		for _, c := range e.Children {
			if isActive(c, p) {
				return true
			}
		}
	}
	return false
}

// Breadcrumb returns the chain of active entries from a root down to the leaf
// matching currentPath. The first match in declared order wins. The result is
// empty when the path is not in the tree.
func Breadcrumb(t *Tree, currentPath string) []Entry {
	if t.Empty() {
		return []Entry{}
	}
	p := route.Normalize(currentPath)
	if chain, ok := trail(t.Roots, p, nil); ok {
		return chain
	}
	return []Entry{}
}

func trail(entries []Entry, p string, prefix []Entry) ([]Entry, bool) {
	for _, e := range entries {
		switch v := e.(type) {
		case Leaf:
			if !v.External && v.Route == p {
				return append(clone(prefix), v), true
			}
		case *Group:
			if chain, ok := trail(v.Children, p, append(prefix, v)); ok {
				return chain, true
			}
		}
	}
	return nil, false
}

func clone(entries []Entry) []Entry {
	out := make([]Entry, len(entries), len(entries)+1)
	copy(out, entries)
	return out
}
