// Package schema bootstraps the SQLite database that indexes VRS variant
// locations by source file URI. It includes:
//   - DDL helpers for the file_uris and vrs_locations tables
//   - Setup: create the database file when missing, then ensure both tables
//   - Row: the record external loaders use to move a vrs_locations row
package schema
