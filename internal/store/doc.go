// Package store provides file-based access to the site's data packs and to the
// static build output.
//
// Data packs live under the configured data directory:
//
//	{dataDir}/cities/{slug}.json
//	{dataDir}/clusters/{cluster_id}.json
//
// Every load reads the file fresh from disk and validates it through package
// inventory; nothing is cached. A missing file is reported with ok=false so
// callers can choose between a not-found response and a build failure.
//
// The package includes stores for:
//   - City packs (CityFileStore)
//   - Cluster files (ClusterFileStore)
//   - Build output (OutputFileStore)
package store
