package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/scratchdata/linkfeed/pkg/config"
	"github.com/scratchdata/linkfeed/pkg/storage/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewConnection(config.Database{
		Type:     "sqlite",
		Settings: map[string]any{"dsn": filepath.Join(t.TempDir(), "seed.db")},
	})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, run(ctx, db))
	require.NoError(t, run(ctx, db))

	links, err := db.ListLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 2)
	for _, l := range links {
		assert.Equal(t, "www.howtographql.com", l.URL)
		assert.Equal(t, "Fullstack tutorial for GraphQL", l.Description)
	}
	assert.NotEqual(t, links[0].ID, links[1].ID)
}
