// Package metrics exposes Prometheus instrumentation for builds and the
// preview server.
//
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics
