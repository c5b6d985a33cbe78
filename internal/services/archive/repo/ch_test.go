package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCH_WriteAppendsAndSends(t *testing.T) {
	t.Parallel()
	batch := &fakeBatch{}
	sink := NewCH(&fakeClickhouse{batch: batch})
	tables := testTables(false)

	require.NoError(t, sink.Write(context.Background(), testRun, tables, testClean(tables)))
	require.True(t, batch.sendCalled)
	require.Len(t, batch.rows, 2)
	row := batch.rows[0]
	require.Len(t, row, 12)
	require.Equal(t, testRun.ID, row[0])
	require.Equal(t, uint8(1), row[5])
	require.Equal(t, []string{"great", "goal", "messi"}, row[10])
	require.Equal(t, "retweeted", batch.rows[1][7])
}

func TestCH_AppendFailureAbortsWithoutSend(t *testing.T) {
	t.Parallel()
	batch := &fakeBatch{appendErrAt: 2}
	tables := testTables(false)
	err := NewCH(&fakeClickhouse{batch: batch}).Write(context.Background(), testRun, tables, testClean(tables))
	require.Error(t, err)
	require.False(t, batch.sendCalled)
	require.True(t, batch.aborted)
}

func TestCH_SendAndPrepareFailures(t *testing.T) {
	t.Parallel()
	tables := testTables(false)
	clean := testClean(tables)

	err := NewCH(&fakeClickhouse{batch: &fakeBatch{sendErr: errors.New("send failed")}}).Write(context.Background(), testRun, tables, clean)
	require.Error(t, err)

	err = NewCH(&fakeClickhouse{prepareErr: errors.New("no conn")}).Write(context.Background(), testRun, tables, clean)
	require.Error(t, err)
}

func TestCH_EmptyRunSkipsBatch(t *testing.T) {
	t.Parallel()
	f := &fakeClickhouse{prepareErr: errors.New("must not be called")}
	require.NoError(t, NewCH(f).Write(context.Background(), testRun, testTables(false), nil))
}

func TestCH_Migrate(t *testing.T) {
	t.Parallel()
	f := &fakeClickhouse{}
	require.NoError(t, NewCH(f).Migrate(context.Background()))
	require.Len(t, f.execs, 1)
	require.Contains(t, f.execs[0], "MergeTree")
}
