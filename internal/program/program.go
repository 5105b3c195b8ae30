package program

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gymtrack/internal/store"
)

var ErrNoExercises = errors.New("no exercises provided")

// Program maps a day name to its ordered exercise list.
type Program map[string][]string

// Removal describes the result of RemoveExercise. When DayEmpty is set the
// caller should ask the user whether the day itself goes too.
type Removal struct {
	Day      string
	Exercise string
	DayEmpty bool
}

// Days returns the day names sorted lexicographically. Index-based selection
// in RemoveExercise is done over this order.
func (p Program) Days() []string {
	days := make([]string, 0, len(p))
	for day := range p {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// AddExercises adds the comma-separated exercises in raw to day, creating the
// day if needed. Names are title-cased, blanks dropped, and names already on
// the day are skipped. It returns how many exercises were actually added.
func (p Program) AddExercises(day, raw string) (int, error) {
	day = store.TitleName(day)
	if day == "" {
		return 0, fmt.Errorf("day: %w", store.ErrEmptyName)
	}

	var items []string
	for _, token := range strings.Split(raw, ",") {
		if name := store.TitleName(token); name != "" {
			items = append(items, name)
		}
	}
	if len(items) == 0 {
		return 0, ErrNoExercises
	}

	exercises := p[day]
	added := 0
	for _, ex := range items {
		if containsName(exercises, ex) {
			continue
		}
		exercises = append(exercises, ex)
		added++
	}

	if added > 0 {
		p[day] = exercises
	}
	return added, nil
}

// RemoveExercise removes the exerciseIndex-th exercise of the dayIndex-th day
// (both 1-based, days in Days order). The day key is kept even when it ends
// up empty; use DeleteDay once the user confirms.
func (p Program) RemoveExercise(dayIndex, exerciseIndex int) (Removal, error) {
	days := p.Days()
	if err := store.CheckRange(dayIndex, len(days)); err != nil {
		return Removal{}, fmt.Errorf("day: %w", err)
	}
	day := days[dayIndex-1]

	exercises := p[day]
	if err := store.CheckRange(exerciseIndex, len(exercises)); err != nil {
		return Removal{}, fmt.Errorf("exercise: %w", err)
	}

	removed := exercises[exerciseIndex-1]
	remaining := make([]string, 0, len(exercises)-1)
	remaining = append(remaining, exercises[:exerciseIndex-1]...)
	remaining = append(remaining, exercises[exerciseIndex:]...)
	p[day] = remaining

	return Removal{
		Day:      day,
		Exercise: removed,
		DayEmpty: len(remaining) == 0,
	}, nil
}

// DeleteDay removes day from the program and reports whether it existed.
func (p Program) DeleteDay(day string) bool {
	if _, ok := p[day]; !ok {
		return false
	}
	delete(p, day)
	return true
}

// Exercises returns the exercises of the day that normalises to day.
func (p Program) Exercises(day string) []string {
	return p[store.TitleName(day)]
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if store.SameName(n, name) {
			return true
		}
	}
	return false
}
