package schema

// Row carries one vrs_locations record between a caller and the database.
// Nothing in this module builds or parses one; the db tags let loaders scan
// it with sqlx.
type Row struct {
	// VrsID is the GA4GH VRS identifier of the variant.
	VrsID string `db:"vrs_id"`

	// Chr is the chromosome label as written in the source file.
	Chr string `db:"chr"`

	// Pos is the position on Chr.
	Pos int64 `db:"pos"`

	// URIID references file_uris.id.
	URIID int64 `db:"uri_id"`
}
