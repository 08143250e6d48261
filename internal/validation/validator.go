package validation

import (
	"fmt"

	"github.com/ChrisShen93/xstate/internal/locale"
	"github.com/ChrisShen93/xstate/internal/navbar"
	"github.com/ChrisShen93/xstate/internal/route"
	"github.com/ChrisShen93/xstate/internal/sidebar"
	"github.com/ChrisShen93/xstate/internal/util/sets"
)

// LocaleInput is the materialized navigation of one locale.
type LocaleInput struct {
	Locale locale.Locale
	// Tree is the sidebar the locale is served, possibly the default
	// locale's tree.
	Tree         *sidebar.Tree
	TreeFallback bool
	// Nav is the locale's declared nav list; NavDeclared is false when the
	// locale is served the default locale's list instead.
	Nav         []navbar.Link
	NavDeclared bool
	// Pages whitelists routes that exist without being in the sidebar.
	Pages []string
}

// Input is everything the validator checks.
type Input struct {
	Locales []LocaleInput
	// Pages whitelists routes valid in every locale. They are written as
	// default-locale routes and checked under each locale's prefix.
	Pages []string
	// Default is the locale Pages are written in. When zero, the default
	// locale among Locales is used.
	Default locale.Locale
}

func (in Input) defaultLocale() locale.Locale {
	if in.Default.Prefix != "" {
		return in.Default
	}
	for _, li := range in.Locales {
		if li.Locale.IsDefault() {
			return li.Locale
		}
	}
	return locale.Locale{Prefix: locale.DefaultPrefix}
}

// Validator runs the navigation rules.
type Validator struct{}

// New returns a Validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks every locale and returns the combined result. It never
// fails; problems are reported as findings.
func (v *Validator) Validate(in Input) *Result {
	res := &Result{LocalesTotal: len(in.Locales)}
	def := in.defaultLocale()

	for _, li := range in.Locales {
		code := li.Locale.Code
		if _, err := li.Locale.Tag(); err != nil {
			res.add(Finding{
				Severity: SeverityWarning,
				Rule:     RuleLocaleCode,
				Locale:   code,
				Location: "locales",
				Message:  fmt.Sprintf("locale code %q is not a valid BCP 47 language tag", code),
				Fix:      `use a tag such as "en-US" or set "lang"`,
			})
		}

		if li.TreeFallback {
			if !li.Locale.IsDefault() {
				res.add(Finding{
					Severity: SeverityWarning,
					Rule:     RuleSidebarFallback,
					Locale:   code,
					Location: "sidebar",
					Message:  "locale declares no sidebar and is served the default locale's sidebar",
				})
			}
		} else {
			v.checkTree(res, li.Tree)
		}

		if !li.NavDeclared {
			msg := "locale declares no nav links and is served the default locale's nav"
			if li.Locale.IsDefault() {
				msg = "default locale declares no nav links"
			}
			res.add(Finding{
				Severity: SeverityWarning,
				Rule:     RuleMissingNav,
				Locale:   code,
				Location: "nav",
				Message:  msg,
			})
			continue
		}

		known := normalized(li.Pages)
		for _, p := range in.Pages {
			known.Add(locale.Localize(p, def, li.Locale))
		}
		known.Add(route.Normalize(li.Locale.Prefix))
		if li.Tree != nil {
			for _, r := range li.Tree.Routes() {
				known.Add(r)
			}
		}
		for i, link := range li.Nav {
			if link.External {
				continue
			}
			if r := link.Route(); !known.Has(r) {
				res.add(Finding{
					Severity: SeverityError,
					Rule:     RuleDanglingLink,
					Locale:   code,
					Route:    r,
					Location: fmt.Sprintf("nav[%d]", i),
					Message:  fmt.Sprintf("nav link %q points to %s, which is neither in the sidebar nor listed in pages", link.Text, r),
					Fix:      "add the page to the sidebar or to pages, or mark the link external",
				})
			}
		}
	}
	return res
}

// ValidateTree runs the rules that need only a single tree. It is the hook
// sidebar.Builder calls on every freshly built tree and returns an error
// only for error-level findings.
func (v *Validator) ValidateTree(t *sidebar.Tree) error {
	res := &Result{LocalesTotal: 1}
	v.checkTree(res, t)
	return res.Err()
}

func (v *Validator) checkTree(res *Result, t *sidebar.Tree) {
	if t == nil {
		return
	}
	code := t.Locale.Code
	seen := sets.New[string]()
	for _, l := range t.Leaves() {
		if l.External {
			continue
		}
		if !seen.Insert(l.Route) {
			res.add(Finding{
				Severity: SeverityError,
				Rule:     RuleDuplicateRoute,
				Locale:   code,
				Route:    l.Route,
				Location: "sidebar",
				Message:  fmt.Sprintf("route %s appears more than once in the sidebar", l.Route),
				Fix:      "remove the repeated entry",
			})
		}
	}
	sidebar.Walk(t.Roots, func(e sidebar.Entry, _ int) bool {
		if g, ok := e.(*sidebar.Group); ok && len(g.Children) == 0 {
			res.add(Finding{
				Severity: SeverityWarning,
				Rule:     RuleEmptyGroup,
				Locale:   code,
				Location: "sidebar",
				Message:  fmt.Sprintf("group %q has no children", g.Title),
			})
		}
		return true
	})
}

func normalized(routes []string) sets.Set[string] {
	s := sets.New[string]()
	for _, r := range routes {
		s.Add(route.Normalize(r))
	}
	return s
}
