// Package digest fingerprints rendered pages.
//
// Fingerprints identify page content in the build manifest and back the
// ETag headers of the preview server.
package digest
