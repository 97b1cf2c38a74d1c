// Package pages builds the view model of every route from the data packs.
//
// Each call reads the packs it needs fresh from the stores, so a preview
// server always reflects the files on disk. City pages additionally check
// that the cluster they name lists them.
package pages
