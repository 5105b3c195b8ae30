package export

import (
	"path/filepath"
	"testing"

	"gymtrack/internal/workoutlog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "export", "workouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_ReplaceWorkouts(t *testing.T) {
	s := newTestSQLite(t)

	rows := []workoutlog.Row{
		{"2024-01-01", "Push", "Bench Press", "135.0", "8"},
		{"2024-01-01", "Push"},
		{"2024-01-03", "Legs", "Squat", "225.0", "5"},
		{"someday", "Legs", "Squat", "225.0", "5"},
		{"2024-01-08", "Push", "Bench Press", "140.0", "6"},
	}

	n, err := s.ReplaceWorkouts(rows)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var position, reps int
	var weight float64
	err = s.db.QueryRow(
		`SELECT position, weight, reps FROM workouts WHERE exercise = ? ORDER BY date DESC LIMIT 1`,
		"Bench Press",
	).Scan(&position, &weight, &reps)
	require.NoError(t, err)
	assert.Equal(t, 5, position)
	assert.Equal(t, 140.0, weight)
	assert.Equal(t, 6, reps)
}

func TestSQLite_ReplaceWorkouts_Replaces(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.ReplaceWorkouts([]workoutlog.Row{
		{"2024-01-01", "Push", "Bench Press", "135.0", "8"},
		{"2024-01-02", "Pull", "Deadlift", "225.0", "5"},
	})
	require.NoError(t, err)

	n, err := s.ReplaceWorkouts([]workoutlog.Row{
		{"2024-01-02", "Pull", "Deadlift", "225.0", "5"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	n, err = s.ReplaceWorkouts(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err = s.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNewSQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workouts.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	_, err = s.ReplaceWorkouts([]workoutlog.Row{{"2024-01-01", "Push", "Bench Press", "135.0", "8"}})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
