// Package watch re-runs a callback when data pack files change.
//
// Events are debounced: a burst of saves triggers one callback once the
// directory has been quiet for the debounce interval.
package watch
