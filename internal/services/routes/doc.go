// Package routes enumerates every public path of the site: the fixed pages
// plus one page per city pack and per cluster file found on disk.
package routes
