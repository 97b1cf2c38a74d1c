// Package inventory validates data packs and reports inconsistencies between them.
//
// Validation is fail-fast: the first violated rule is returned as a
// *ValidationError naming the pack, its slug and the rule. Each rule family
// has a sentinel (ErrMissingField, ErrSlugMismatch, ...) usable with errors.Is.
//
// # Rules
//
// City packs must carry city, state, state_abbr, county, slug, practice,
// courts, law_enforcement and dmv. The practice must be "dui", the slug must
// equal the filename, courts and law_enforcement must be non-empty arrays and
// dmv.agency must be set.
//
// Cluster files must carry cluster_id, cluster_name, state_abbr and a
// non-empty cities array. The cluster_id must equal the filename and every
// sponsorship status must be available, reserved or sold.
//
// Presence checks look at JSON keys, not values: a key holding an empty
// string is present.
package inventory
