package main

import (
	"bufio"
	"io"

	"gymtrack/internal/chart"
	"gymtrack/internal/program"
	"gymtrack/internal/workoutlog"
)

type App struct {
	programs *program.Repo
	workouts *workoutlog.Repo

	in       *bufio.Reader
	out      io.Writer
	selector Selector
	chart    chart.Options
}

// Session is the state the menu loop carries between operations. The
// program is saved after every change made through it.
type Session struct {
	Program program.Program
}

type menuItem struct {
	label string
	run   func(a *App, s *Session) error
}

var menuItems = []menuItem{
	{"View Program", (*App).ViewProgram},
	{"Add Exercise(s)", (*App).AddExercisesPrompt},
	{"Log Workout", func(a *App, _ *Session) error { return a.LogWorkoutPrompt() }},
	{"View Log", func(a *App, _ *Session) error { return a.ViewLog() }},
	{"Remove Log Entry", func(a *App, _ *Session) error { return a.RemoveLogEntryPrompt() }},
	{"Remove Exercise", (*App).RemoveExercisePrompt},
	{"Progress Chart", func(a *App, _ *Session) error { return a.ChartPrompt() }},
	{"Exit", nil},
}
