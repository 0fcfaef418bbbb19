package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zthechelon/portfolio/internal/config"
	"github.com/zthechelon/portfolio/pkg/logger"
)

func TestOpenStoreSQLite(t *testing.T) {
	var cfg config.Config
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.SQLitePath = filepath.Join(t.TempDir(), "portfolio.db")

	store, err := OpenStore(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	defer store.Close()

	st, err := store.Seed.State(context.Background())
	require.NoError(t, err)
	assert.False(t, st.HasProfile)
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	var cfg config.Config
	cfg.DB.Driver = "mysql"

	_, err := OpenStore(cfg, logger.NewNopLogger())
	assert.ErrorContains(t, err, "unsupported")
}
