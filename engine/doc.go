// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: parsing sqlite:// locations, checking for and
// creating database files, and opening pooled sqlx handles with per-connection
// pragmas. It intentionally keeps a thin surface so other packages can share
// the same driver instance.
package engine
