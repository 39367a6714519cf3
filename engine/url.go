package engine

import (
	"errors"
	"strconv"
	"strings"
)

// Scheme is the prefix every database location must carry.
const Scheme = "sqlite://"

// MemoryPath is the SQLite in-memory database name.
const MemoryPath = ":memory:"

// ErrInvalidURL is matched by every *URLError.
var ErrInvalidURL = errors.New("engine: invalid database url")

// URLError reports a database location that is not a sqlite:// path.
type URLError struct {
	URL    string
	Reason string
}

func (e *URLError) Error() string {
	return "engine: invalid database url " + strconv.Quote(e.URL) + ": " + e.Reason
}

// Is makes errors.Is(err, ErrInvalidURL) hold for any *URLError.
func (e *URLError) Is(target error) bool { return target == ErrInvalidURL }

// ParsePath strips the sqlite:// scheme from dbURL and returns the filesystem
// path (or ":memory:"). Any query string is dropped.
func ParsePath(dbURL string) (string, error) {
	if !strings.HasPrefix(dbURL, Scheme) {
		return "", &URLError{URL: dbURL, Reason: "missing " + Scheme + " prefix"}
	}
	path := strings.TrimPrefix(dbURL, Scheme)
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "", &URLError{URL: dbURL, Reason: "empty path"}
	}
	return path, nil
}

// IsMemory reports whether dbURL names an in-memory database.
func IsMemory(dbURL string) bool {
	path, err := ParsePath(dbURL)
	return err == nil && path == MemoryPath
}
