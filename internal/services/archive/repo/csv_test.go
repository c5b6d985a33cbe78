package repo

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tweetsnlp/internal/platform/testkit"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSV_WriteRawWithoutPlaces(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	c := NewCSV(dir)

	files, err := c.WriteRaw(testRun, testTables(false))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "tweets", "tweets_20221120_18_05.csv"),
		filepath.Join(dir, "users", "users_20221120_18_05.csv"),
	}, files)

	_, err = os.Stat(filepath.Join(dir, "places"))
	require.True(t, os.IsNotExist(err), "no places directory expected")

	rows := readCSV(t, files[0])
	require.Equal(t, postColumns, rows[0])
	require.Len(t, rows, 3)
	require.Equal(t, []string{"1", "a", "2022-11-20 17:59:01+00:00", "es", "true", "Qué golazo, \"Messi\"", "", "", ""}, rows[1])
	require.Equal(t, []string{"2", "b", "2022-11-20 17:59:01+00:00", "es", "false", "RT golazo", "retweeted", "1", "p1"}, rows[2])

	raw := testkit.ReadFile(t, files[0])
	testkit.MustContain(t, raw, "tweet_id,author_id,created_at,lang,possibly_sensitive,text,type,ref_tweet_id,geo_place_id\n")
	testkit.MustContain(t, raw, `"Qué golazo, ""Messi"""`)

	users := readCSV(t, files[1])
	require.Equal(t, authorColumns, users[0])
	require.Equal(t, "Doha", users[2][3])

	entries, err := os.ReadDir(filepath.Join(dir, "tweets"))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestCSV_WriteRawWithPlaces(t *testing.T) {
	t.Parallel()
	c := NewCSV(t.TempDir())
	files, err := c.WriteRaw(testRun, testTables(true))
	require.NoError(t, err)
	require.Len(t, files, 3)
	rows := readCSV(t, files[2])
	require.Equal(t, placeColumns, rows[0])
	require.Equal(t, []string{"p1", "Qatar", "Doha, Qatar", "Doha"}, rows[1])
}

func TestCSV_WriteClean(t *testing.T) {
	t.Parallel()
	c := NewCSV(t.TempDir())
	tables := testTables(false)
	f, err := c.WriteClean(testRun, testClean(tables))
	require.NoError(t, err)
	require.Equal(t, c.Path(TableClean, testRun), f)

	rows := readCSV(t, f)
	require.Equal(t, cleanColumns, rows[0])
	require.Len(t, rows[0], 11)
	require.Equal(t, "1", rows[1][4])
	require.Equal(t, "0", rows[2][4])
	require.Equal(t, `["great","goal","messi"]`, rows[1][9])
	require.Equal(t, "what a great goal messi", rows[1][10])
}

func TestCSV_EmptyCleanTableStillHasHeader(t *testing.T) {
	t.Parallel()
	c := NewCSV(t.TempDir())
	f, err := c.WriteClean(testRun, nil)
	require.NoError(t, err)
	require.Len(t, readCSV(t, f), 1)
}

func TestCSV_UnwritableDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	_, err := NewCSV(blocker).WriteRaw(testRun, testTables(false))
	require.Error(t, err)
}
