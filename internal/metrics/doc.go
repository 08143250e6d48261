// Package metrics provides observability hooks for docnav resolution.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so the navigation core never depends on a metrics backend:
//
//	srv := server.New(site, server.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The resolvers themselves stay pure; the HTTP layer and the site loader
// record outcomes around them.
package metrics
