//go:build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"tweetsnlp/internal/platform/store"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, port.Port())
}

func TestPG_WriteRun_Integration(t *testing.T) {
	dsn := startPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := store.Open(ctx, store.Config{AppName: "tweetsnlp-archive-it", PG: store.PGConfig{URL: dsn, MaxConns: 2, ConnectRetries: 3}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	sink := NewPG(st.PG)
	require.NoError(t, sink.Migrate(ctx))
	require.NoError(t, sink.Migrate(ctx), "schema must be re-runnable")

	run := testRun
	run.ID = uuid.NewString()
	tables := testTables(true)
	// a post repeated across pages is stored once
	tables.Posts = append(tables.Posts, tables.Posts[0])
	require.NoError(t, sink.Write(ctx, run, tables, testClean(tables)))

	count := func(table string) int {
		var n int
		require.NoError(t, st.PG.QueryRow(ctx, "SELECT count(*) FROM "+table+" WHERE run_id = $1::uuid", run.ID).Scan(&n))
		return n
	}
	require.Equal(t, 2, count("posts"))
	require.Equal(t, 2, count("authors"))
	require.Equal(t, 1, count("places"))
	require.Equal(t, 2, count("clean_posts"))

	var refType *string
	var sensitive bool
	require.NoError(t, st.PG.QueryRow(ctx,
		"SELECT ref_type, possibly_sensitive FROM posts WHERE run_id = $1::uuid AND post_id = '1'", run.ID,
	).Scan(&refType, &sensitive))
	require.Nil(t, refType)
	require.True(t, sensitive)

	var toks []string
	require.NoError(t, st.PG.QueryRow(ctx,
		"SELECT clean FROM clean_posts WHERE run_id = $1::uuid AND post_id = '2'", run.ID,
	).Scan(&toks))
	require.Equal(t, []string{"great", "goal", "messi"}, toks)
}
