// Package render turns page view models into HTML.
//
// Pages are html/template files embedded in the binary. Every page template
// defines a "content" block that the shared layout wraps with the site
// header, footer and JSON-LD metadata. Long-form copy (editorial policy,
// sponsorship disclosure, contact) is Markdown, converted with goldmark and
// sanitized with bluemonday before it reaches a template.
package render
