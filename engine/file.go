package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Exists reports whether the database behind dbURL is present. In-memory
// databases always exist.
func Exists(dbURL string) (bool, error) {
	path, err := ParsePath(dbURL)
	if err != nil {
		return false, err
	}
	if path == MemoryPath {
		return true, nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("engine: %s is a directory", path)
	}
	return true, nil
}

// Create creates an empty database file for dbURL. An empty file is a valid
// SQLite database; pages are written on first use. Parent directories must
// already exist.
func Create(dbURL string) error {
	path, err := ParsePath(dbURL)
	if err != nil {
		return err
	}
	if path == MemoryPath {
		return nil
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("engine: create database %s: %w", path, err)
	}
	return f.Close()
}
