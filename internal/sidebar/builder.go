package sidebar

import (
	"fmt"
	"strings"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
	"github.com/ChrisShen93/xstate/internal/locale"
	"github.com/ChrisShen93/xstate/internal/route"
)

// TreeValidator checks a freshly built tree. Build fails when it returns an error.
type TreeValidator interface {
	ValidateTree(t *Tree) error
}

// Builder turns raw, declaratively authored sidebars into Trees.
type Builder struct {
	groups    map[string]any
	validator TreeValidator
}

// Option configures a Builder.
type Option func(*Builder)

// WithValidator hands every built tree to v before Build returns it.
func WithValidator(v TreeValidator) Option {
	return func(b *Builder) { b.validator = v }
}

// WithSharedGroups registers groups that raw entries can include with {ref: name}.
func WithSharedGroups(groups map[string]any) Option {
	return func(b *Builder) { b.groups = groups }
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build resolves the raw sidebar of loc.
//
// Fallback is whole-tree: when raw is empty or absent, defaultTree is
// returned as is (nil defaultTree yields an empty tree for loc). A locale
// that declares anything at all gets exactly what it declares, with no
// per-group or per-leaf merge against the default locale. Leaves omitted
// from a partially translated sidebar are simply absent.
//
// Raw entries are route strings, {path, title} leaf objects, {title,
// collapsible, children} groups, or {ref} includes of a shared group.
// Anything else fails with a CodeMalformedEntry config error.
func (b *Builder) Build(loc locale.Locale, raw []any, defaultTree *Tree) (*Tree, error) {
	if len(raw) == 0 {
		if defaultTree == nil {
			return &Tree{Locale: loc, Roots: []Entry{}}, nil
		}
		return defaultTree, nil
	}

	p := &parser{groups: b.groups, locale: loc.Code}
	roots, err := p.entries(raw, "sidebar")
	if err != nil {
		return nil, err
	}
	tree := &Tree{Locale: loc, Roots: roots}

	if b.validator != nil {
		if err := b.validator.ValidateTree(tree); err != nil {
			return nil, fmt.Errorf("sidebar for locale %s: %w", loc.Code, err)
		}
	}
	return tree, nil
}

// IsFallback reports whether tree was substituted from another locale for loc.
func IsFallback(loc locale.Locale, tree *Tree) bool {
	return tree != nil && tree.Locale.Code != loc.Code
}

type parser struct {
	groups map[string]any
	locale string
	refs   []string // shared groups currently being expanded
}

func (p *parser) entries(raw []any, at string) ([]Entry, error) {
	out := make([]Entry, 0, len(raw))
	for i, item := range raw {
		e, err := p.entry(item, fmt.Sprintf("%s[%d]", at, i))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (p *parser) entry(item any, at string) (Entry, error) {
	if v, ok := item.(string); ok {
		return p.leaf(v, "", at)
	}
	obj, ok := asObject(item)
	if !ok {
		return nil, p.malformed(at, fmt.Sprintf("entry must be a route string or an object, got %T", item))
	}

	_, hasChildren := obj["children"]
	_, hasPath := obj["path"]
	_, hasRef := obj["ref"]
	switch count(hasChildren, hasPath, hasRef) {
	case 0:
		return nil, p.malformed(at, "entry has neither a route nor children")
	case 1:
	default:
		return nil, p.malformed(at, "entry mixes children, path and ref")
	}

	title, err := stringField(obj, "title")
	if err != nil {
		return nil, p.malformed(at, err.Error())
	}

	switch {
	case hasPath:
		link, ok := obj["path"].(string)
		if !ok {
			return nil, p.malformed(at, "path must be a string")
		}
		return p.leaf(link, title, at)
	case hasRef:
		name, ok := obj["ref"].(string)
		if !ok || strings.TrimSpace(name) == "" {
			return nil, p.malformed(at, "ref must be a non-empty string")
		}
		return p.ref(name, at)
	default:
		return p.group(obj, title, at)
	}
}

func (p *parser) leaf(link, title, at string) (Entry, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, p.malformed(at, "route is empty")
	}
	if route.IsExternal(link) {
		return Leaf{Route: link, Link: link, Title: title, External: true}, nil
	}
	return Leaf{Route: route.Normalize(link), Link: link, Title: title}, nil
}

func (p *parser) group(obj map[string]any, title, at string) (Entry, error) {
	children, ok := asSequence(obj["children"])
	if !ok {
		return nil, p.malformed(at, "children must be a sequence")
	}
	collapsible := true
	for _, key := range []string{"collapsible", "collapsable"} {
		raw, present := obj[key]
		if !present {
			continue
		}
		flag, ok := raw.(bool)
		if !ok {
			return nil, p.malformed(at, key+" must be a boolean")
		}
		collapsible = flag
	}
	kids, err := p.entries(children, at+".children")
	if err != nil {
		return nil, err
	}
	return &Group{Title: title, Collapsible: collapsible, Children: kids}, nil
}

func (p *parser) ref(name, at string) (Entry, error) {
	for _, active := range p.refs {
		if active == name {
			return nil, errors.ConfigError(errors.CodeDanglingGroupRef, "shared group includes itself").
				WithContext("locale", p.locale).
				WithContext("location", at).
				WithContext("ref", name).
				Build()
		}
	}
	def, ok := p.groups[name]
	if !ok {
		return nil, errors.ConfigError(errors.CodeDanglingGroupRef, "reference to undefined shared group").
			WithContext("locale", p.locale).
			WithContext("location", at).
			WithContext("ref", name).
			Build()
	}
	p.refs = append(p.refs, name)
	defer func() { p.refs = p.refs[:len(p.refs)-1] }()

	e, err := p.entry(def, "groups."+name)
	if err != nil {
		return nil, err
	}
	if _, ok := e.(*Group); !ok {
		return nil, p.malformed("groups."+name, "shared group must have children")
	}
	return e, nil
}

func (p *parser) malformed(at, msg string) error {
	return errors.ConfigError(errors.CodeMalformedEntry, "malformed sidebar entry: "+msg).
		WithContext("locale", p.locale).
		WithContext("location", at).
		Build()
}

func count(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func stringField(obj map[string]any, key string) (string, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

// asObject accepts the map shapes produced by the YAML, TOML and JSON decoders.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out, true
	}
	return nil, false
}
