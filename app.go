package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gymtrack/internal/chart"
	"gymtrack/internal/config"
	"gymtrack/internal/export"
	"gymtrack/internal/program"
	"gymtrack/internal/progress"
	"gymtrack/internal/store"
	"gymtrack/internal/workoutlog"

	log "github.com/sirupsen/logrus"
)

func NewApp(in io.Reader, out io.Writer) *App {
	a := &App{
		in:    bufio.NewReader(in),
		out:   out,
		chart: chart.DefaultOptions,
	}
	a.selector = lineSelector{a: a}
	return a
}

// Configure points the app at the stores named in cfg and makes sure the
// workout log exists.
func (a *App) Configure(cfg *config.Config) error {
	a.programs = program.NewRepo(cfg.ProgramFile)
	a.workouts = workoutlog.NewRepo(cfg.WorkoutFile)
	log.Debugf("program file: %s, workout file: %s", cfg.ProgramFile, cfg.WorkoutFile)
	return a.workouts.EnsureStore()
}

// LoadSession loads the program. An unreadable program file is reported and
// the session starts empty.
func (a *App) LoadSession() *Session {
	p, err := a.programs.Load()
	if err != nil {
		log.Errorf("load program: %s", err)
		fmt.Fprintf(a.out, "Warning: could not read program file, starting with an empty program (%v).\n\n", err)
	}
	return &Session{Program: p}
}

// RunMenu runs the interactive menu until the user exits or input ends.
// Failures of single operations are reported and the loop goes on.
func (a *App) RunMenu(s *Session) error {
	labels := make([]string, len(menuItems))
	for i, item := range menuItems {
		labels[i] = item.label
	}

	for {
		choice, err := a.selector.Select("Gym Tracker", labels)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if errors.Is(err, store.ErrInvalidSelection) || errors.Is(err, store.ErrOutOfRange) {
				fmt.Fprint(a.out, "Invalid choice.\n\n")
				continue
			}
			return err
		}

		item := menuItems[choice-1]
		if item.run == nil {
			return nil
		}
		if err := item.run(a, s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			a.report(err)
		}
	}
}

func (a *App) ViewProgram(s *Session) error {
	if len(s.Program) == 0 {
		fmt.Fprint(a.out, "No program found. Add some exercises first.\n\n")
		return nil
	}
	data, err := program.Marshal(s.Program)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\n", data)
	return nil
}

func (a *App) AddExercisesPrompt(s *Session) error {
	day, err := a.prompt("Day name (e.g., Push, Pull, Legs, Upper, Lower): ")
	if err != nil {
		return err
	}
	raw, err := a.prompt("Enter exercises separated by commas:\n> ")
	if err != nil {
		return err
	}
	return a.AddExercises(s, day, raw)
}

func (a *App) AddExercises(s *Session, day, raw string) error {
	added, err := s.Program.AddExercises(day, raw)
	if err != nil {
		return err
	}

	day = store.TitleName(day)
	if added == 0 {
		fmt.Fprintf(a.out, "No new exercises added to %s (all were duplicates).\n\n", day)
		return nil
	}

	if err := a.programs.Save(s.Program); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %d exercise(s) to %s.\n\n", added, day)
	return nil
}

func (a *App) RemoveExercisePrompt(s *Session) error {
	if len(s.Program) == 0 {
		fmt.Fprint(a.out, "No program found. Add some exercises first.\n\n")
		return nil
	}

	days := s.Program.Days()
	numbered(a.out, "Program Days", days)
	raw, err := a.prompt("Select a day number to edit: ")
	if err != nil {
		return err
	}
	dayIdx, err := store.ParseSelection(raw, len(days))
	if err != nil {
		return err
	}

	day := days[dayIdx-1]
	exercises := s.Program[day]
	if len(exercises) == 0 {
		fmt.Fprintf(a.out, "No exercises listed for %s.\n\n", day)
		return a.confirmDeleteDay(s, day)
	}

	numbered(a.out, day+" Exercises", exercises)
	raw, err = a.prompt("Select an exercise number to remove: ")
	if err != nil {
		return err
	}
	exIdx, err := store.ParseSelection(raw, len(exercises))
	if err != nil {
		return err
	}

	removal, err := s.Program.RemoveExercise(dayIdx, exIdx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed '%s' from %s.\n", removal.Exercise, removal.Day)

	if removal.DayEmpty {
		if err := a.confirmDeleteDay(s, removal.Day); err != nil {
			return err
		}
	} else if err := a.programs.Save(s.Program); err != nil {
		return err
	}
	fmt.Fprintln(a.out)
	return nil
}

// confirmDeleteDay asks whether the now empty day should go, then saves.
func (a *App) confirmDeleteDay(s *Session, day string) error {
	answer, err := a.prompt(fmt.Sprintf("'%s' has no exercises left. Remove this day as well? (y/n): ", day))
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(answer), "y") && s.Program.DeleteDay(day) {
		fmt.Fprintf(a.out, "Removed day '%s'.\n", day)
	}
	if serr := a.programs.Save(s.Program); serr != nil {
		return serr
	}
	return err
}

func (a *App) LogWorkoutPrompt() error {
	day, err := a.prompt("What are you hitting today? (e.g, Push, Pull, Legs): ")
	if err != nil {
		return err
	}
	exercise, err := a.prompt("What exercise did you just complete?: ")
	if err != nil {
		return err
	}
	weight, err := a.prompt("Weight (lbs): ")
	if err != nil {
		return err
	}
	reps, err := a.prompt("Reps: ")
	if err != nil {
		return err
	}
	return a.LogWorkout(day, exercise, weight, reps)
}

func (a *App) LogWorkout(day, exercise, weight, reps string) error {
	if store.TitleName(day) == "" {
		return fmt.Errorf("day: %w", store.ErrEmptyName)
	}
	if store.TitleName(exercise) == "" {
		return fmt.Errorf("exercise: %w", store.ErrEmptyName)
	}

	entry, err := a.workouts.Append(day, exercise, weight, reps)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Workout has been logged! %s: %s lbs x %d\n\n",
		entry.Exercise, workoutlog.FormatWeight(entry.Weight), entry.Reps)
	return nil
}

func (a *App) ViewLog() error {
	rows, err := a.workouts.ReadAll()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprint(a.out, "No workouts logged yet.\n\n")
		return nil
	}

	fmt.Fprintln(a.out, "\n---- Workout Log ----")
	a.printLog(rows)
	fmt.Fprintln(a.out)
	return nil
}

func (a *App) RemoveLogEntryPrompt() error {
	rows, err := a.workouts.ReadAll()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprint(a.out, "No workouts logged yet.\n\n")
		return nil
	}

	fmt.Fprintln(a.out, "\n---- Logged Workouts ----")
	a.printLog(rows)

	raw, err := a.prompt("\nEnter the number of the entry to delete: ")
	if err != nil {
		return err
	}
	position, err := store.ParseSelection(raw, len(rows))
	if err != nil {
		return err
	}
	return a.RemoveLogEntry(position)
}

func (a *App) RemoveLogEntry(position int) error {
	removed, err := a.workouts.RemoveAt(position)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed entry: %s\n\n", strings.Join(removed, ", "))
	return nil
}

func (a *App) ChartPrompt() error {
	name, err := a.prompt("Exercise name: ")
	if err != nil {
		return err
	}
	return a.Chart(name)
}

// Chart plots weight and reps over time for an exercise, followed by a
// per-day summary.
func (a *App) Chart(name string) error {
	name = store.TitleName(name)
	if name == "" {
		return fmt.Errorf("exercise: %w", store.ErrEmptyName)
	}

	rows, err := a.workouts.ReadAll()
	if err != nil {
		return err
	}

	points := progress.SortChronological(progress.FilterByExercise(rows, name))
	series := progress.Split(points)
	series.Exercise = name
	if series.Empty() {
		fmt.Fprintf(a.out, "No logs found for %s.\n\n", name)
		return nil
	}

	if err := chart.Render(a.out, series, a.chart); err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	var tableRows [][]string
	for _, day := range progress.History(points) {
		tableRows = append(tableRows, []string{
			day.Date.Format(workoutlog.DateLayout),
			strconv.Itoa(day.Sets),
			formatFloat(day.AvgWeight),
			formatFloat(day.MaxWeight),
			formatFloat(day.AvgReps),
			formatFloat(day.Volume),
		})
	}
	PrintTable(a.out, []string{"Date", "Sets", "Avg lbs", "Max lbs", "Avg reps", "Volume"}, tableRows, nil)
	fmt.Fprintln(a.out)
	return nil
}

// Export mirrors the workout log into the SQLite database at dbPath.
func (a *App) Export(dbPath string) error {
	rows, err := a.workouts.ReadAll()
	if err != nil {
		return err
	}

	db, err := export.NewSQLite(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.ReplaceWorkouts(rows)
	if err != nil {
		return err
	}
	if skipped := len(rows) - n; skipped > 0 {
		fmt.Fprintf(a.out, "Exported %d workout(s) to %s, skipped %d malformed row(s).\n", n, dbPath, skipped)
	} else {
		fmt.Fprintf(a.out, "Exported %d workout(s) to %s.\n", n, dbPath)
	}
	return nil
}

// exerciseNames lists every exercise in the program and the log, for shell
// completion.
func (a *App) exerciseNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		name = store.TitleName(name)
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	if p, err := a.programs.Load(); err == nil {
		for _, day := range p.Days() {
			for _, ex := range p[day] {
				add(ex)
			}
		}
	}
	if rows, err := a.workouts.ReadAll(); err == nil {
		for _, row := range rows {
			if len(row) > workoutlog.ColExercise {
				add(row[workoutlog.ColExercise])
			}
		}
	}
	return names
}

func (a *App) printLog(rows []workoutlog.Row) {
	tableRows := make([][]string, 0, len(rows))
	for i, row := range rows {
		tableRows = append(tableRows, []string{
			strconv.Itoa(i + 1),
			row.Field(workoutlog.ColDate),
			row.Field(workoutlog.ColDay),
			row.Field(workoutlog.ColExercise),
			row.Field(workoutlog.ColWeight),
			row.Field(workoutlog.ColReps),
		})
	}
	PrintTable(a.out, []string{"#", "Date", "Day", "Exercise", "Weight (lbs)", "Reps"}, tableRows, nil)
}

// prompt prints label and reads one line. A final line without a newline is
// still returned; io.EOF only comes once the input is used up.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return strings.TrimSpace(line), err
	}
	return strings.TrimSpace(line), nil
}

// report turns an operation error into a message for the user.
func (a *App) report(err error) {
	log.Warnf("operation failed: %s", err)

	var msg string
	switch {
	case errors.Is(err, store.ErrInvalidNumber):
		msg = "Please enter valid numbers for weight and reps."
	case errors.Is(err, store.ErrInvalidSelection):
		msg = "Invalid input."
	case errors.Is(err, store.ErrOutOfRange):
		msg = "Number out of range."
	case errors.Is(err, store.ErrEmptyName):
		msg = "A name is required."
	case errors.Is(err, program.ErrNoExercises):
		msg = "No exercises provided."
	case errors.Is(err, store.ErrStorageCorrupt):
		msg = fmt.Sprintf("Could not read data file: %v", err)
	default:
		msg = fmt.Sprintf("Error: %v", err)
	}
	fmt.Fprintf(a.out, "%s\n\n", msg)
}
