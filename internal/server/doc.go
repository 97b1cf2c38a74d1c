// Package server is the preview HTTP server.
//
// It serves the same pages a build writes, rendered on every request from
// the data packs on disk, along with the sitemap, robots.txt, a health check
// and Prometheus metrics. Missing packs answer 404 with the site's not-found
// page; invalid packs answer 500 and are logged.
package server
