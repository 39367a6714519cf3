package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/sqlite-vrs/engine"
	"github.com/viant/sqlite-vrs/schema"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInitAndCleanup(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "index.sqlite")
	dbURL := engine.Scheme + dbPath

	out, err := run(t, "init", "--db-url", dbURL)
	require.NoError(t, err)
	assert.Contains(t, out, "initialized "+dbURL)
	assert.FileExists(t, dbPath)

	_, err = run(t, "init", "--db-url", dbURL, "--log-level", "debug")
	require.NoError(t, err, "init is idempotent")

	db, err := engine.Connect(context.Background(), dbURL)
	require.NoError(t, err)
	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM "+schema.VrsLocationsTable))
	require.NoError(t, db.Close())

	shmPath := filepath.Join(dir, "index.db-shm")
	walPath := filepath.Join(dir, "index.db-wal")
	require.NoError(t, os.WriteFile(shmPath, nil, 0o644))
	require.NoError(t, os.WriteFile(walPath, nil, 0o644))

	out, err = run(t, "cleanup", "--db-url", dbURL)
	require.NoError(t, err)
	assert.Contains(t, out, "cleaned "+dbURL)
	assert.NoFileExists(t, shmPath)
	assert.NoFileExists(t, walPath)
	assert.FileExists(t, dbPath)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "from-config.sqlite")
	configPath := filepath.Join(dir, "vrsix.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("db_url: "+engine.Scheme+dbPath+"\nlog:\n  format: json\n"), 0o644))

	_, err := run(t, "init", "-c", configPath)
	require.NoError(t, err)
	assert.FileExists(t, dbPath)
}

func TestEnvOverride(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "from-env.sqlite")
	t.Setenv("VRSIX_DB_URL", engine.Scheme+dbPath)

	_, err := run(t, "init")
	require.NoError(t, err)
	assert.FileExists(t, dbPath)
}

func TestCleanup_InvalidURL(t *testing.T) {
	_, err := run(t, "cleanup", "--db-url", "/tmp/index.sqlite")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrInvalidURL)
}

func TestInit_InvalidJournalMode(t *testing.T) {
	dbURL := engine.Scheme + filepath.Join(t.TempDir(), "index.sqlite")
	_, err := run(t, "init", "--db-url", dbURL, "--journal-mode", "fast")
	assert.Error(t, err)
}
