// Package testutil provides data pack fixtures shared by package tests.
//
// Fixtures are plain JSON objects (map[string]any) so tests can delete or
// overwrite individual keys before writing them into a temporary data
// directory with WriteCity and WriteCluster.
package testutil
