package progress

import (
	"sort"
	"time"

	"gymtrack/internal/store"
	"gymtrack/internal/workoutlog"

	log "github.com/sirupsen/logrus"
)

// Point is a single parsed set of one exercise.
type Point struct {
	Date   time.Time
	Weight float64
	Reps   int
}

// Series holds parallel date/weight/reps sequences, ready to plot.
type Series struct {
	Exercise string
	Dates    []time.Time
	Weights  []float64
	Reps     []int
}

func (s Series) Len() int {
	return len(s.Dates)
}

func (s Series) Empty() bool {
	return len(s.Dates) == 0
}

// FilterByExercise keeps the rows whose exercise matches name after title
// casing, in store order. Malformed rows are skipped, never fatal.
func FilterByExercise(rows []workoutlog.Row, name string) []Point {
	name = store.TitleName(name)
	var points []Point
	skipped := 0
	for _, row := range rows {
		entry, err := row.Entry()
		if err != nil {
			skipped++
			continue
		}
		if store.TitleName(entry.Exercise) != name {
			continue
		}
		points = append(points, Point{
			Date:   entry.Date,
			Weight: entry.Weight,
			Reps:   entry.Reps,
		})
	}
	if skipped > 0 {
		log.Debugf("progress: skipped %d malformed row(s)", skipped)
	}
	return points
}

// SortChronological sorts points by date, oldest first. Points on the same
// date keep their store order.
func SortChronological(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// Split turns points into parallel sequences.
func Split(points []Point) Series {
	s := Series{
		Dates:   make([]time.Time, 0, len(points)),
		Weights: make([]float64, 0, len(points)),
		Reps:    make([]int, 0, len(points)),
	}
	for _, p := range points {
		s.Dates = append(s.Dates, p.Date)
		s.Weights = append(s.Weights, p.Weight)
		s.Reps = append(s.Reps, p.Reps)
	}
	return s
}

// Query filters rows by exercise, sorts them chronologically and splits them.
// An empty series means there is no data for the exercise.
func Query(rows []workoutlog.Row, exercise string) Series {
	s := Split(SortChronological(FilterByExercise(rows, exercise)))
	s.Exercise = store.TitleName(exercise)
	return s
}
