// Package build writes the complete static site to an output directory.
//
// A build checks the inventory, clears the output directory, renders every
// route with a bounded worker group and finishes with the 404 page, the
// sitemap, robots.txt and a manifest of content fingerprints. Any error
// aborts the build.
package build
