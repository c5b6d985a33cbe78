// Package repo writes archive runs to CSV files, Postgres and ClickHouse
package repo

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	perr "tweetsnlp/internal/platform/errors"
	"tweetsnlp/internal/services/archive/domain"
	collect "tweetsnlp/internal/services/collect/domain"
)

// Table names double as directory names and file prefixes
const (
	TablePosts  = "tweets"
	TableUsers  = "users"
	TablePlaces = "places"
	TableClean  = "clean_tweets"
)

// CSV writes one file per table under Dir/<table>/<table>_<stamp>.csv
type CSV struct {
	Dir string
}

// NewCSV returns a CSV writer rooted at dir
func NewCSV(dir string) *CSV { return &CSV{Dir: dir} }

// Path returns the file a table is written to for run
func (c *CSV) Path(table string, run domain.Run) string {
	return filepath.Join(c.Dir, table, fmt.Sprintf("%s_%s.csv", table, run.Stamp()))
}

// WriteRaw writes the posts and users tables, and places when any page had them
func (c *CSV) WriteRaw(run domain.Run, t collect.Tables) ([]string, error) {
	var files []string

	rows := make([][]string, len(t.Posts))
	for i, p := range t.Posts {
		rows[i] = rawPostRecord(p)
	}
	f, err := c.write(TablePosts, run, postColumns, rows)
	if err != nil {
		return files, err
	}
	files = append(files, f)

	rows = make([][]string, len(t.Authors))
	for i, a := range t.Authors {
		rows[i] = authorRecord(a)
	}
	if f, err = c.write(TableUsers, run, authorColumns, rows); err != nil {
		return files, err
	}
	files = append(files, f)

	if !t.HasPlaces() {
		return files, nil
	}
	rows = make([][]string, len(t.Places))
	for i, p := range t.Places {
		rows[i] = placeRecord(p)
	}
	if f, err = c.write(TablePlaces, run, placeColumns, rows); err != nil {
		return files, err
	}
	return append(files, f), nil
}

// WriteClean writes the enriched posts table
func (c *CSV) WriteClean(run domain.Run, clean []collect.CleanPost) (string, error) {
	rows := make([][]string, len(clean))
	for i, cp := range clean {
		rec, err := cleanRecord(cp)
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeJSON, "archive: encode clean tokens of %s", cp.ID)
		}
		rows[i] = rec
	}
	return c.write(TableClean, run, cleanColumns, rows)
}

// write goes through a temp file in the target directory so a failed run
// never leaves a truncated csv behind
func (c *CSV) write(table string, run domain.Run, header []string, rows [][]string) (string, error) {
	path := c.Path(table, run)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeStorage, "archive: mkdir %s", dir)
	}
	tmp, err := os.CreateTemp(dir, "."+table+"-*.csv")
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeStorage, "archive: create %s", table)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		_ = tmp.Close()
		return "", perr.Wrapf(err, perr.ErrorCodeStorage, "archive: write %s header", table)
	}
	if err := w.WriteAll(rows); err != nil {
		_ = tmp.Close()
		return "", perr.Wrapf(err, perr.ErrorCodeStorage, "archive: write %s rows", table)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return "", perr.Wrapf(err, perr.ErrorCodeStorage, "archive: chmod %s", table)
	}
	if err := tmp.Close(); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeStorage, "archive: close %s", table)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeStorage, "archive: rename %s", path)
	}
	return path, nil
}
