// Package domain defines the data pack model and the storage contracts shared
// across the site generator. It contains plain types and interfaces only.
package domain
