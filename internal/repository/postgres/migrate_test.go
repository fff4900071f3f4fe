package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesEmbedded(t *testing.T) {
	names, err := MigrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "migrations/0001_init.sql", names[0])

	sql, err := migrationFS.ReadFile(names[0])
	require.NoError(t, err)
	for _, table := range []string{"jobs", "applications", "profiles"} {
		assert.Contains(t, string(sql), "CREATE TABLE IF NOT EXISTS "+table)
	}
	// Upsert keyed by user_id relies on this constraint
	assert.True(t, strings.Contains(string(sql), "user_id    text NOT NULL UNIQUE"))
}
