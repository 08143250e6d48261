// Package validation checks a loaded site description for broken navigation:
// duplicate sidebar routes, nav links to unknown pages, empty groups and
// locales that silently fall back to the default locale.
package validation

import (
	"fmt"
	"strings"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
)

// Severity indicates the importance of a finding.
type Severity int

const (
	// SeverityInfo is informational only.
	SeverityInfo Severity = iota
	// SeverityWarning is reported but does not stop the site from loading.
	SeverityWarning
	// SeverityError fails the load.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Rule identifiers.
const (
	RuleDuplicateRoute  = "duplicate-route"
	RuleDanglingLink    = "dangling-link"
	RuleEmptyGroup      = "empty-group"
	RuleMissingNav      = "missing-nav"
	RuleSidebarFallback = "sidebar-fallback"
	RuleLocaleCode      = "locale-code"
)

// Finding is a single problem found in the site description.
type Finding struct {
	Severity Severity
	Rule     string
	Locale   string // locale code
	Route    string // normalized route involved, if any
	Location string // where in the config ("nav[2]", "sidebar")
	Message  string
	Fix      string
}

func (f Finding) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", f.Rule, f.Message)
	if f.Locale != "" {
		fmt.Fprintf(&b, " (locale %s", f.Locale)
		if f.Location != "" {
			fmt.Fprintf(&b, ", %s", f.Location)
		}
		b.WriteString(")")
	}
	return b.String()
}

// Result contains every finding of a validation run.
type Result struct {
	Findings     []Finding
	LocalesTotal int
}

// HasErrors returns true if any error-level findings exist.
func (r *Result) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of error-level findings.
func (r *Result) ErrorCount() int {
	return len(r.Errors())
}

// WarningCount returns the number of warning-level findings.
func (r *Result) WarningCount() int {
	return len(r.Warnings())
}

// Errors returns the error-level findings in report order.
func (r *Result) Errors() []Finding {
	return r.bySeverity(SeverityError)
}

// Warnings returns the warning-level findings in report order.
func (r *Result) Warnings() []Finding {
	return r.bySeverity(SeverityWarning)
}

func (r *Result) bySeverity(s Severity) []Finding {
	if r == nil {
		return nil
	}
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

func (r *Result) add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// findingsKey is the error context key holding the error findings.
const findingsKey = "findings"

// Err returns nil when there are no error findings. Otherwise it returns a
// validation error listing them, from which FromError recovers the findings.
func (r *Result) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	lines := make([]string, len(errs))
	for i, f := range errs {
		lines[i] = f.String()
	}
	return errors.ValidationError(fmt.Sprintf("%d navigation error(s): %s", len(errs), strings.Join(lines, "; "))).
		WithCode(ruleCode(errs[0].Rule)).
		WithContext(findingsKey, errs).
		Build()
}

func ruleCode(rule string) errors.Code {
	switch rule {
	case RuleDuplicateRoute:
		return errors.CodeDuplicateRoute
	case RuleDanglingLink:
		return errors.CodeDanglingLink
	default:
		return errors.CodeNone
	}
}

// FromError recovers the error findings carried by an error built by
// Result.Err, anywhere in err's chain.
func FromError(err error) ([]Finding, bool) {
	ce, ok := errors.AsClassified(err)
	if !ok {
		return nil, false
	}
	v, ok := ce.Context().Get(findingsKey)
	if !ok {
		return nil, false
	}
	findings, ok := v.([]Finding)
	return findings, ok
}
