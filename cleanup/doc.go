// Package cleanup removes the shared-memory (.db-shm) and write-ahead-log
// (.db-wal) side files that SQLite leaves beside a database. It is meant for
// use once no process holds the database open, e.g. between test runs or
// when tearing down an ephemeral deployment.
package cleanup
