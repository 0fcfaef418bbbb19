package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", filepath.Join(dir, "seed.db"))
	t.Setenv("REDIS_ADDR", "")
	return dir
}

func TestRunSeedsOnceThenNoops(t *testing.T) {
	dir := sqliteEnv(t)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"--config", dir}, &out))
	assert.Contains(t, out.String(), "seeded content replaced (profile_missing)")

	out.Reset()
	require.NoError(t, run(ctx, []string{"--config", dir}, &out))
	assert.Contains(t, out.String(), "nothing to do")

	out.Reset()
	require.NoError(t, run(ctx, []string{"--config", dir, "--force"}, &out))
	assert.Contains(t, out.String(), "(forced)")

	out.Reset()
	require.NoError(t, run(ctx, []string{"--config", dir, "--clear"}, &out))
	assert.Contains(t, out.String(), "cleared")
}

func TestRunRejectsConflictingFlags(t *testing.T) {
	err := run(context.Background(), []string{"--force", "--clear"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "mutually exclusive")
}
