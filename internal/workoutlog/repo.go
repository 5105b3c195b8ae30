package workoutlog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gymtrack/internal/store"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Repo owns the workout log CSV file.
type Repo struct {
	path string
	now  func() time.Time
}

func NewRepo(path string) *Repo {
	return &Repo{
		path: path,
		now:  time.Now,
	}
}

// WithClock replaces the clock used to stamp appended entries.
func (r *Repo) WithClock(now func() time.Time) *Repo {
	r.now = now
	return r
}

func (r *Repo) Path() string {
	return r.path
}

// EnsureStore creates the log file with its header row if it does not exist.
func (r *Repo) EnsureStore() error {
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", r.path, err)
	}

	data, err := encodeRows([][]string{Header})
	if err != nil {
		return err
	}
	if err := store.WriteFile(r.path, data); err != nil {
		return fmt.Errorf("create workout log: %w", err)
	}
	log.Infof("created workout log %s", r.path)
	return nil
}

// Append logs one set dated today. Weight and reps are validated before
// anything touches the file; on store.ErrInvalidNumber nothing is written.
func (r *Repo) Append(day, exercise, weight, reps string) (_ Entry, err error) {
	w, err := ParseWeight(weight)
	if err != nil {
		return Entry{}, err
	}
	n, err := ParseReps(reps)
	if err != nil {
		return Entry{}, err
	}

	now := r.now()
	entry := Entry{
		Date:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Day:      store.TitleName(day),
		Exercise: store.TitleName(exercise),
		Weight:   w,
		Reps:     n,
	}

	if err := r.EnsureStore(); err != nil {
		return Entry{}, err
	}

	f, err := os.OpenFile(r.path, os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return Entry{}, fmt.Errorf("open workout log: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if err := terminateLastLine(f); err != nil {
		return Entry{}, err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(entry.Record()); err != nil {
		return Entry{}, fmt.Errorf("write entry: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return Entry{}, fmt.Errorf("flush entry: %w", err)
	}

	log.WithFields(log.Fields{
		"day":      entry.Day,
		"exercise": entry.Exercise,
		"weight":   entry.Weight,
		"reps":     entry.Reps,
	}).Info("workout logged")

	return entry, nil
}

// ReadAll returns every data row in file order. The header row, when
// present, is not included. A missing file has no rows.
func (r *Repo) ReadAll() ([]Row, error) {
	rows, _, err := r.read()
	return rows, err
}

// RemoveAt deletes the data row at the 1-based position (the header is never
// counted) and rewrites the file. Later rows move up by one. The file's own
// header record is written back as it was read.
func (r *Repo) RemoveAt(position int) (Row, error) {
	rows, header, err := r.read()
	if err != nil {
		return nil, err
	}
	if err := store.CheckRange(position, len(rows)); err != nil {
		return nil, err
	}

	removed := rows[position-1]
	records := make([][]string, 0, len(rows))
	if header != nil {
		records = append(records, header)
	}
	for i, row := range rows {
		if i == position-1 {
			continue
		}
		records = append(records, row)
	}

	data, err := encodeRows(records)
	if err != nil {
		return nil, err
	}
	if err := store.WriteFile(r.path, data); err != nil {
		return nil, fmt.Errorf("rewrite workout log: %w", err)
	}

	log.Infof("removed workout log row %d: %v", position, []string(removed))
	return removed, nil
}

// read returns the data rows and the header record, which is nil when the
// file has none. Stray quotes inside a field are kept verbatim.
func (r *Repo) read() (_ []Row, header Row, err error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Row{}, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open %s: %v", store.ErrStorageCorrupt, r.path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows := []Row{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: parse %s: %v", store.ErrStorageCorrupt, r.path, err)
		}
		if len(record) == 0 {
			continue
		}
		if len(rows) == 0 && header == nil && isHeader(record) {
			header = Row(record)
			continue
		}
		rows = append(rows, Row(record))
	}
	return rows, header, nil
}

// terminateLastLine adds a newline when a hand-edited file does not end with
// one, so the next row starts on its own line.
func terminateLastLine(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat workout log: %w", err)
	}
	if info.Size() == 0 {
		return nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return fmt.Errorf("read workout log: %w", err)
	}
	if last[0] == '\n' {
		return nil
	}
	_, err = f.Write([]byte("\n"))
	return err
}

func encodeRows(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.WriteAll(records); err != nil {
		return nil, fmt.Errorf("encode workout log: %w", err)
	}
	return buf.Bytes(), nil
}
