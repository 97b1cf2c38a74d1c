// Package check validates the whole data inventory: every city pack, every
// cluster file, and the references between them.
package check
