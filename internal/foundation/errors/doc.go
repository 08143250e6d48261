// Package errors provides the classified error primitives used across docnav.
//
// Every failure raised during the load phase (reading the site description,
// building sidebar trees, validating the aggregate) is a ClassifiedError that
// carries a broad Category, a Severity, a machine-readable Code and free-form
// context. CLI and HTTP adapters translate those into exit codes and status
// codes.
//
// Example usage:
//
//	err := errors.ConfigError(errors.CodeMalformedEntry, "sidebar entry has neither a route nor children").
//		WithContext("locale", "zh").
//		WithContext("location", "sidebar[1].children[3]").
//		Build()
package errors
