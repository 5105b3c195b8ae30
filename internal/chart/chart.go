package chart

import (
	"fmt"
	"io"

	"gymtrack/internal/progress"
	"gymtrack/internal/store"

	"github.com/guptarohit/asciigraph"
)

const dateLayout = "2006-01-02"

type Options struct {
	Height int
	Width  int
	Color  bool
}

var DefaultOptions = Options{
	Height: 12,
	Width:  60,
	Color:  true,
}

// Render draws weight and reps for s as two stacked plots, each on its own
// y-axis, followed by the covered date range. An empty series renders nothing
// and returns store.ErrNoData.
func Render(w io.Writer, s progress.Series, opts Options) error {
	if s.Empty() {
		return fmt.Errorf("%w for %s", store.ErrNoData, s.Exercise)
	}

	reps := make([]float64, len(s.Reps))
	for i, r := range s.Reps {
		reps[i] = float64(r)
	}

	weightPlot := plot(s.Weights, "Weight (lbs)", 1, asciigraph.Blue, len(s.Dates), opts)
	repsPlot := plot(reps, "Reps", 0, asciigraph.DarkOrange, len(s.Dates), opts)

	if _, err := fmt.Fprintf(w, "%s Progress\n\n%s\n\n%s\n\n%s\n", s.Exercise, weightPlot, repsPlot, caption(s)); err != nil {
		return err
	}
	return nil
}

// plot draws one line with its own axis. The two plots share the height.
func plot(values []float64, label string, precision uint, color asciigraph.AnsiColor, points int, opts Options) string {
	height := opts.Height / 2
	if height < 3 {
		height = 3
	}

	options := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Precision(precision),
		asciigraph.Caption(label),
	}
	if opts.Width > 0 && points > 1 {
		options = append(options, asciigraph.Width(opts.Width))
	}
	if opts.Color {
		options = append(options, asciigraph.SeriesColors(color))
	}

	// asciigraph needs two points to draw a line
	if len(values) == 1 {
		values = []float64{values[0], values[0]}
	}
	return asciigraph.Plot(values, options...)
}

func caption(s progress.Series) string {
	first := s.Dates[0].Format(dateLayout)
	last := s.Dates[len(s.Dates)-1].Format(dateLayout)
	if first == last {
		return fmt.Sprintf("%s, %d set(s)", first, s.Len())
	}
	return fmt.Sprintf("%s .. %s, %d set(s)", first, last, s.Len())
}
