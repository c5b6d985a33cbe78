package repo

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	perr "tweetsnlp/internal/platform/errors"
	collect "tweetsnlp/internal/services/collect/domain"
)

func TestPG_MigrateRunsEachStatement(t *testing.T) {
	t.Parallel()
	db := &fakeTx{}
	require.NoError(t, NewPG(db).Migrate(context.Background()))
	require.Equal(t, 1, db.txs)
	require.Len(t, db.calls, 6)
	for _, c := range db.calls {
		require.NotContains(t, c.sql, ";")
	}
}

func TestPG_WriteOneTransaction(t *testing.T) {
	t.Parallel()
	db := &fakeTx{}
	tables := testTables(false)
	require.NoError(t, NewPG(db).Write(context.Background(), testRun, tables, testClean(tables)))
	require.Equal(t, 1, db.txs)

	// run, posts, authors, clean_posts; places skipped
	require.Len(t, db.calls, 4)
	require.Contains(t, db.calls[0].sql, "archive_runs")
	require.Contains(t, db.calls[1].sql, "INSERT INTO posts")
	require.Contains(t, db.calls[2].sql, "INSERT INTO authors")
	require.Contains(t, db.calls[3].sql, "INSERT INTO clean_posts")

	postArgs := db.calls[1].args
	require.Equal(t, testRun.ID, postArgs[0])
	require.Equal(t, []string{"1", "2"}, postArgs[1])
	refTypes := postArgs[7].([]*string)
	require.Nil(t, refTypes[0])
	require.Equal(t, "retweeted", *refTypes[1])

	cleanArgs := db.calls[3].args
	require.Equal(t, []string{`["great","goal","messi"]`, `["great","goal","messi"]`}, cleanArgs[2])
}

func TestPG_WritePlaces(t *testing.T) {
	t.Parallel()
	db := &fakeTx{}
	require.NoError(t, NewPG(db).Write(context.Background(), testRun, testTables(true), nil))
	var sqls []string
	for _, c := range db.calls {
		sqls = append(sqls, c.sql)
	}
	require.Len(t, sqls, 4)
	require.True(t, strings.Contains(sqls[3], "INSERT INTO places"))
}

func TestPG_WriteStopsOnError(t *testing.T) {
	t.Parallel()
	db := &fakeTx{failOn: "INSERT INTO authors"}
	err := NewPG(db).Write(context.Background(), testRun, testTables(false), []collect.CleanPost{})
	require.Error(t, err)
	require.True(t, perr.IsCode(err, perr.ErrorCodeStorage))
	require.Len(t, db.calls, 3)
}
