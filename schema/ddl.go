package schema

const (
	// FileURIsTable holds one row per indexed source file.
	FileURIsTable = "file_uris"

	// VrsLocationsTable ties a VRS id to a chromosome/position in a source file.
	VrsLocationsTable = "vrs_locations"
)

// Tables lists the tables created by Setup in creation order.
func Tables() []string {
	return []string{FileURIsTable, VrsLocationsTable}
}

// FileURIsDDL returns the DDL for file_uris. Table and column names are shared
// with existing index files and must not change.
func FileURIsDDL() string {
	return `CREATE TABLE IF NOT EXISTS file_uris (
    id INTEGER PRIMARY KEY,
    uri TEXT UNIQUE
);`
}

// VrsLocationsDDL returns the DDL for vrs_locations. A location is unique per
// (vrs_id, chr, pos, uri_id) and uri_id references file_uris(id).
func VrsLocationsDDL() string {
	return `CREATE TABLE IF NOT EXISTS vrs_locations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    vrs_id TEXT NOT NULL,
    chr TEXT NOT NULL,
    pos INTEGER NOT NULL,
    uri_id INTEGER NOT NULL,
    FOREIGN KEY (uri_id) REFERENCES file_uris(id),
    UNIQUE(vrs_id, chr, pos, uri_id)
);`
}

// DDL returns both table statements as a single script.
func DDL() string {
	return FileURIsDDL() + "\n" + VrsLocationsDDL()
}
