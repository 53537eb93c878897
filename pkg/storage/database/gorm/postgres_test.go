package gorm

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/scratchdata/linkfeed/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	database := "testdb"
	username := "testuser"
	password := "testpass"

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("Create pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("Ping Docker: %s", err)
	}
	resource, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        "16-alpine",
			Env: []string{
				"POSTGRES_DB=" + database,
				"POSTGRES_USER=" + username,
				"POSTGRES_PASSWORD=" + password,
			},
		},
		func(config *docker.HostConfig) {
			// set AutoRemove to true so that stopped container goes away by itself
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Purge(resource) })

	pool.MaxWait = 2 * time.Minute
	resource.Expire(3 * 60)

	dsn := fmt.Sprintf(
		"host=localhost port=%s user=%s password=%s dbname=%s sslmode=disable",
		resource.GetPort("5432/tcp"), username, password, database,
	)

	var db *Gorm
	err = pool.Retry(func() error {
		db, err = NewGorm(config.Database{
			Type:     "postgres",
			Settings: map[string]any{"dsn": dsn, "seed": true},
		})
		return err
	})
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	link, err := db.AppendLink(ctx, "A", "a.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), link.ID)

	links, err := db.ListLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "www.howtographql.com", links[0].URL)
	assert.Equal(t, "graphql.org", links[1].URL)
	assert.Equal(t, "a.com", links[2].URL)
}
