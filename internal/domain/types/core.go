package types

import "strings"

// Slug identifies a city pack; it doubles as the pack's filename stem.
type Slug string

// String returns the string form of the slug.
func (s Slug) String() string { return string(s) }

// ClusterID identifies a cluster file; it doubles as the file's name stem.
type ClusterID string

// String returns the string form of the cluster identifier.
func (id ClusterID) String() string { return string(id) }

// PracticeKey names a legal practice area, e.g. "dui" or "personal_injury".
type PracticeKey string

// PracticeDUI is the only practice a city pack may currently carry.
const PracticeDUI PracticeKey = "dui"

// String returns the string form of the practice key.
func (p PracticeKey) String() string { return string(p) }

// Label returns the practice key in display form ("personal_injury" -> "personal injury").
func (p PracticeKey) Label() string { return strings.ReplaceAll(string(p), "_", " ") }
