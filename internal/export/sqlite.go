package export

import (
	"database/sql"
	"fmt"

	"gymtrack/internal/store"
	"gymtrack/internal/workoutlog"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	// migration queries
	createWorkoutsTableSQL = `
  CREATE TABLE IF NOT EXISTS workouts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  position INTEGER NOT NULL,
  date TEXT NOT NULL,
  day TEXT NOT NULL,
  exercise TEXT NOT NULL,
  weight REAL NOT NULL,
  reps INTEGER NOT NULL,
  exported_at DATETIME DEFAULT CURRENT_TIMESTAMP
  )`

	createExerciseIndexSQL = `CREATE INDEX IF NOT EXISTS idx_workouts_exercise_date ON workouts (exercise, date)`

	// workout queries
	deleteWorkoutsSQL = `DELETE FROM workouts`
	insertWorkoutSQL  = `INSERT INTO workouts (position, date, day, exercise, weight, reps) VALUES (?, ?, ?, ?, ?, ?)`
	countWorkoutsSQL  = `SELECT COUNT(*) FROM workouts`
)

// SQLite mirrors the workout log into a SQLite database so it can be
// queried with regular SQL tools. The CSV file stays the source of truth.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLite, error) {
	// ensure directory exists
	if err := store.EnsureDir(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// verify connection with database
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) runMigrations() error {
	for _, stmt := range []string{createWorkoutsTableSQL, createExerciseIndexSQL} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// ReplaceWorkouts swaps the mirrored rows for rows in one transaction.
// Rows that do not parse are skipped. It returns the number of rows stored.
func (s *SQLite) ReplaceWorkouts(rows []workoutlog.Row) (_ int, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, tx.Rollback())
		}
	}()

	if _, err := tx.Exec(deleteWorkoutsSQL); err != nil {
		return 0, fmt.Errorf("clear workouts: %w", err)
	}

	stmt, err := tx.Prepare(insertWorkoutSQL)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for i, row := range rows {
		entry, perr := row.Entry()
		if perr != nil {
			log.Debugf("export: skipping row %d: %v", i+1, perr)
			continue
		}
		if _, err := stmt.Exec(
			i+1,
			entry.Date.Format(workoutlog.DateLayout),
			entry.Day,
			entry.Exercise,
			entry.Weight,
			entry.Reps,
		); err != nil {
			return 0, fmt.Errorf("insert row %d: %w", i+1, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

func (s *SQLite) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(countWorkoutsSQL).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
