package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	migrations, err := Migrations.FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	first := migrations[0]
	assert.Equal(t, "20240101000001_create_summaries.sql", first.Id)
	require.NotEmpty(t, first.Up)
	require.NotEmpty(t, first.Down)
	assert.True(t, strings.Contains(first.Up[0], "CREATE TABLE IF NOT EXISTS summaries"))
}
