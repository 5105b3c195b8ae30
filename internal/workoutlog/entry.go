package workoutlog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gymtrack/internal/store"
)

const DateLayout = "2006-01-02"

// Header is the first row of a workout log file.
var Header = []string{"date", "day", "exercise", "weight", "reps"}

// Column positions within a row.
const (
	ColDate = iota
	ColDay
	ColExercise
	ColWeight
	ColReps
)

// Entry is one logged set.
type Entry struct {
	Date     time.Time
	Day      string
	Exercise string
	Weight   float64 // lbs
	Reps     int
}

// Record renders e as a log row.
func (e Entry) Record() []string {
	return []string{
		e.Date.Format(DateLayout),
		e.Day,
		e.Exercise,
		FormatWeight(e.Weight),
		strconv.Itoa(e.Reps),
	}
}

// Row is a raw log row as stored, without any type coercion. Rows written by
// older versions or by hand may be short or hold garbage.
type Row []string

// Field returns the i-th field, or "?" when the row is too short.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return "?"
	}
	return r[i]
}

// Entry parses r. Rows with fewer than five fields or with an unparsable
// date, weight or reps are rejected.
func (r Row) Entry() (Entry, error) {
	if len(r) < len(Header) {
		return Entry{}, fmt.Errorf("row has %d fields, want %d", len(r), len(Header))
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(r[ColDate]))
	if err != nil {
		return Entry{}, fmt.Errorf("parse date: %w", err)
	}
	weight, err := ParseWeight(r[ColWeight])
	if err != nil {
		return Entry{}, err
	}
	reps, err := ParseReps(r[ColReps])
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Date:     date,
		Day:      r[ColDay],
		Exercise: r[ColExercise],
		Weight:   weight,
		Reps:     reps,
	}, nil
}

// ParseWeight accepts a finite, non-negative number.
func ParseWeight(raw string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0, fmt.Errorf("%w: weight %q", store.ErrInvalidNumber, raw)
	}
	return w, nil
}

// ParseReps accepts a non-negative integer.
func ParseReps(raw string) (int, error) {
	r, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || r < 0 {
		return 0, fmt.Errorf("%w: reps %q", store.ErrInvalidNumber, raw)
	}
	return r, nil
}

// FormatWeight always keeps a decimal point: 135 -> "135.0", 132.5 -> "132.5".
func FormatWeight(w float64) string {
	s := strconv.FormatFloat(w, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func isHeader(r Row) bool {
	if len(r) < len(Header) {
		return false
	}
	for i, col := range Header {
		if strings.ToLower(strings.TrimSpace(r[i])) != col {
			return false
		}
	}
	return true
}
