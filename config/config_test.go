package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConf(t *testing.T) {
	cfg := DefaultConf()

	p, err := cfg.Lookup("Database1")
	require.NoError(t, err)
	assert.Equal(t, "switch", p.SchemaName)
	assert.Equal(t, "SWITCHDB_DB", p.URLEnv)
	assert.False(t, p.AllowUpsert)
}

func TestLookupFallsBackToOnlyEntry(t *testing.T) {
	cfg := DefaultConf()

	p, err := cfg.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "switchdb", p.ApplicationName)

	_, err = cfg.Lookup("NoSuchDatabase")
	require.Error(t, err)
}

func TestDatabaseURLPrefersEnv(t *testing.T) {
	p := PgStorageConf{
		URLEnv: "SWITCHDB_TEST_CONF_URL",
		URL:    "postgres://fallback:5432/switch_wecc",
	}

	assert.Equal(t, "postgres://fallback:5432/switch_wecc", p.DatabaseURL())

	t.Setenv("SWITCHDB_TEST_CONF_URL", "postgres://fromenv:5432/switch_wecc")
	assert.Equal(t, "postgres://fromenv:5432/switch_wecc", p.DatabaseURL())
}

func TestEnsureExistsRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, EnsureExists(path))

	cfg, err := FromFile(path)
	require.NoError(t, err)

	p, err := cfg.Lookup("Database1")
	require.NoError(t, err)
	assert.Equal(t, "switch", p.SchemaName)

	// a second call must not clobber an existing file
	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, EnsureExists(path))
	fi2, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fi.ModTime(), fi2.ModTime())
}
