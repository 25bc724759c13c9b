// Package results persists completed analysis runs in SQLite.
//
// Each run is stored as one row: a UUID primary key, a human-readable
// timestamped label, the source identifier, and the full result payload as
// JSON. A file lock beside the database guards against concurrent writers
// from separate processes.
package results
