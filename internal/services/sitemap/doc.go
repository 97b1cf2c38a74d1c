// Package sitemap produces sitemap.xml and robots.txt for the site.
package sitemap
