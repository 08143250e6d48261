package metrics

import "time"

// OutcomeLabel enumerates page resolution outcomes.
type OutcomeLabel string

const (
	// OutcomeMatched means the path matched a sidebar leaf.
	OutcomeMatched OutcomeLabel = "matched"
	// OutcomeUnmatched means the page resolved with an empty breadcrumb.
	OutcomeUnmatched OutcomeLabel = "unmatched"
)

// FallbackKind names what a locale inherited from the default locale.
type FallbackKind string

const (
	FallbackSidebar FallbackKind = "sidebar"
	FallbackNav     FallbackKind = "nav"
)

// Recorder defines observability hooks for navigation resolution.
type Recorder interface {
	ObserveResolveDuration(d time.Duration)
	IncResolution(locale string, outcome OutcomeLabel)
	IncFallback(kind FallbackKind, locale string)
	SetValidationFindings(severity string, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveResolveDuration(time.Duration) {}
func (NoopRecorder) IncResolution(string, OutcomeLabel)   {}
func (NoopRecorder) IncFallback(FallbackKind, string)     {}
func (NoopRecorder) SetValidationFindings(string, int)    {}
