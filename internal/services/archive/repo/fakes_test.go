package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"tweetsnlp/internal/platform/store"
	"tweetsnlp/internal/services/archive/domain"
	collect "tweetsnlp/internal/services/collect/domain"
)

type execCall struct {
	sql  string
	args []any
}

// fakeTx records statements; failOn makes the first statement containing it fail
type fakeTx struct {
	calls  []execCall
	txs    int
	failOn string
}

func (f *fakeTx) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return nil, errors.New("exec failed")
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeTx) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("not used")
}

func (f *fakeTx) QueryRow(context.Context, string, ...any) store.Row { return nil }

func (f *fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	f.txs++
	return fn(f)
}

type fakeBatch struct {
	appendErrAt int
	appendCalls int
	rows        [][]any
	sendErr     error
	sendCalled  bool
	aborted     bool
}

func (f *fakeBatch) Append(v ...any) error {
	f.appendCalls++
	if f.appendErrAt > 0 && f.appendCalls == f.appendErrAt {
		return errors.New("append failed")
	}
	f.rows = append(f.rows, v)
	return nil
}

func (f *fakeBatch) Send() error {
	f.sendCalled = true
	return f.sendErr
}

func (f *fakeBatch) Abort() error {
	f.aborted = true
	return nil
}

type fakeClickhouse struct {
	batch      *fakeBatch
	prepareErr error
	execs      []string
}

func (f *fakeClickhouse) PrepareBatch(context.Context, string) (store.Batch, error) {
	if f.prepareErr != nil {
		return nil, f.prepareErr
	}
	return f.batch, nil
}

func (f *fakeClickhouse) Exec(_ context.Context, q string, _ ...any) error {
	f.execs = append(f.execs, q)
	return nil
}

func (f *fakeClickhouse) Close() error { return nil }

var testRun = domain.Run{
	ID:        "0b6f4b5e-52c5-4c2a-9d43-3c1f1a3e9a10",
	Query:     "world cup",
	StartedAt: time.Date(2022, 11, 20, 18, 5, 42, 0, time.UTC),
}

func testTables(withPlaces bool) collect.Tables {
	created := time.Date(2022, 11, 20, 17, 59, 1, 0, time.UTC)
	t := collect.Tables{
		Posts: []collect.Post{
			{ID: "1", AuthorID: "a", Text: "Qué golazo, \"Messi\"", Lang: "es", CreatedAt: created, PossiblySensitive: true},
			collect.Post{ID: "2", AuthorID: "b", Text: "RT golazo", Lang: "es", CreatedAt: created, GeoPlaceID: "p1"}.Ref("retweeted", "1"),
		},
		Authors: []collect.Author{{ID: "a", Name: "Ana", Username: "ana"}, {ID: "b", Name: "Bo", Username: "bo", Location: "Doha"}},
	}
	if withPlaces {
		t.Places = []collect.Place{{ID: "p1", Country: "Qatar", FullName: "Doha, Qatar", Name: "Doha"}}
	}
	return t
}

func testClean(t collect.Tables) []collect.CleanPost {
	return []collect.CleanPost{
		{Post: t.Posts[0], Clean: []string{"great", "goal", "messi"}, Translated: "what a great goal messi"},
		{Post: t.Posts[1], Clean: []string{"great", "goal", "messi"}, Translated: "what a great goal messi"},
	}
}
