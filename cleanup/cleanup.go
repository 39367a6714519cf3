package cleanup

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/sqlite-vrs/engine"
)

const (
	// SharedMemorySuffix is the extension of the WAL shared-memory index.
	SharedMemorySuffix = "db-shm"

	// WriteAheadLogSuffix is the extension of the write-ahead log.
	WriteAheadLogSuffix = "db-wal"
)

// Sidecars returns the shared-memory and write-ahead-log paths for dbURL, in
// that order. The database file's extension is replaced by each suffix, or
// the suffix is appended when the file has no extension. In-memory databases
// have no side files.
func Sidecars(dbURL string) ([]string, error) {
	path, err := engine.ParsePath(dbURL)
	if err != nil {
		return nil, err
	}
	if path == engine.MemoryPath {
		return nil, nil
	}
	return []string{
		withExtension(path, SharedMemorySuffix),
		withExtension(path, WriteAheadLogSuffix),
	}, nil
}

// Tempfiles deletes the side files of the database behind dbURL. Removal is
// best effort: missing files and deletion failures are ignored. The only
// error is an invalid dbURL.
func Tempfiles(dbURL string) error {
	paths, err := Sidecars(dbURL)
	if err != nil {
		return err
	}
	for _, path := range paths {
		err := os.Remove(path)
		switch {
		case err == nil:
			slog.Debug("removed database tempfile", "path", path)
		case errors.Is(err, fs.ErrNotExist):
		default:
			slog.Debug("failed to remove database tempfile", "path", path, "error", err)
		}
	}
	return nil
}

func withExtension(path, ext string) string {
	dir, base := filepath.Split(filepath.Clean(path))
	stem := base
	// A leading dot marks a hidden file, not an extension.
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		stem = base[:i]
	}
	return dir + stem + "." + ext
}
