package pg

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/GlebRadaev/seva/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"00001_create_users.sql",
		"00002_create_campaigns.sql",
		"00003_create_donations.sql",
	}, names)

	for _, name := range names {
		body, err := fs.ReadFile(migrations.Migrations, name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestGooseLogger_Printf(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	gooseLogger{}.Printf("OK   %s", "00001_create_users.sql")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "OK   00001_create_users.sql", logs.All()[0].Message)
}
