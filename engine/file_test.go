package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsAndCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.sqlite")
	dbURL := Scheme + path

	exists, err := Exists(dbURL)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, Create(dbURL))
	_, err = os.Stat(path)
	require.NoError(t, err)

	exists, err = Exists(dbURL)
	require.NoError(t, err)
	assert.True(t, exists)

	// Creating again leaves the existing file in place.
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, Create(dbURL))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestExists_Memory(t *testing.T) {
	exists, err := Exists("sqlite://:memory:")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, Create("sqlite://:memory:"))
}

func TestExists_Directory(t *testing.T) {
	_, err := Exists(Scheme + t.TempDir())
	assert.Error(t, err)
}

func TestCreate_MissingParent(t *testing.T) {
	err := Create(Scheme + filepath.Join(t.TempDir(), "missing", "index.sqlite"))
	assert.Error(t, err)
}

func TestExists_InvalidURL(t *testing.T) {
	_, err := Exists("file:///tmp/a.db")
	assert.ErrorIs(t, err, ErrInvalidURL)
	assert.ErrorIs(t, Create("file:///tmp/a.db"), ErrInvalidURL)
}
