package progress

import (
	"sort"
	"time"
)

// DayStats summarises the sets of one exercise done on a single date.
type DayStats struct {
	Date      time.Time
	Sets      int
	AvgWeight float64
	MaxWeight float64
	AvgReps   float64
	Volume    float64 // sum of weight * reps
}

// History groups points per date, oldest date first.
func History(points []Point) []DayStats {
	day2points := make(map[time.Time][]Point)
	for _, p := range points {
		day := p.Date.Truncate(24 * time.Hour)
		day2points[day] = append(day2points[day], p)
	}

	history := make([]DayStats, 0, len(day2points))
	for day, dayPoints := range day2points {
		stats := DayStats{
			Date: day,
			Sets: len(dayPoints),
		}
		var totalWeight float64
		var totalReps int
		for _, p := range dayPoints {
			totalWeight += p.Weight
			totalReps += p.Reps
			stats.Volume += p.Weight * float64(p.Reps)
			if p.Weight > stats.MaxWeight {
				stats.MaxWeight = p.Weight
			}
		}
		stats.AvgWeight = totalWeight / float64(len(dayPoints))
		stats.AvgReps = float64(totalReps) / float64(len(dayPoints))
		history = append(history, stats)
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})
	return history
}
