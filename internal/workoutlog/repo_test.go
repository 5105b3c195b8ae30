package workoutlog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gymtrack/internal/store"
	"gymtrack/internal/workoutlog"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testRepo(t *testing.T) (*workoutlog.Repo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workouts.csv")
	repo := workoutlog.NewRepo(path).WithClock(func() time.Time {
		return time.Date(2024, 1, 5, 18, 30, 0, 0, time.Local)
	})
	return repo, path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRepo_EnsureStore_Idempotent(t *testing.T) {
	repo, path := testRepo(t)

	require.NoError(t, repo.EnsureStore())
	require.NoError(t, repo.EnsureStore())

	assert.Equal(t, "date,day,exercise,weight,reps\n", readFile(t, path))

	rows, err := repo.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRepo_EnsureStore_KeepsExisting(t *testing.T) {
	repo, path := testRepo(t)
	content := "date,day,exercise,weight,reps\n2024-01-01,Push,Bench Press,135.0,8\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, repo.EnsureStore())
	assert.Equal(t, content, readFile(t, path))
}

func TestRepo_Append(t *testing.T) {
	repo, path := testRepo(t)

	entry, err := repo.Append("push", "bench press", "135", "8")
	require.NoError(t, err)
	assert.Equal(t, "Push", entry.Day)
	assert.Equal(t, "Bench Press", entry.Exercise)
	assert.Equal(t, 135.0, entry.Weight)
	assert.Equal(t, 8, entry.Reps)
	assert.Equal(t, "2024-01-05", entry.Date.Format(workoutlog.DateLayout))

	_, err = repo.Append("Legs", "squat", " 227.5 ", "5")
	require.NoError(t, err)

	assert.Equal(t, `date,day,exercise,weight,reps
2024-01-05,Push,Bench Press,135.0,8
2024-01-05,Legs,Squat,227.5,5
`, readFile(t, path))

	rows, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	last, err := rows[len(rows)-1].Entry()
	require.NoError(t, err)
	assert.Equal(t, 227.5, last.Weight)
	assert.Equal(t, 5, last.Reps)
}

func TestRepo_Append_InvalidNumbers(t *testing.T) {
	repo, path := testRepo(t)
	_, err := repo.Append("Push", "Bench Press", "100", "10")
	require.NoError(t, err)
	before := readFile(t, path)

	for _, tc := range []struct{ weight, reps string }{
		{"heavy", "8"},
		{"", "8"},
		{"-5", "8"},
		{"NaN", "8"},
		{"Inf", "8"},
		{"135", "eight"},
		{"135", "8.5"},
		{"135", "-1"},
		{"135", ""},
	} {
		_, err := repo.Append("Push", "Bench Press", tc.weight, tc.reps)
		assert.ErrorIs(t, err, store.ErrInvalidNumber, "weight %q reps %q", tc.weight, tc.reps)
	}

	assert.Equal(t, before, readFile(t, path))
}

func TestRepo_Append_InvalidNumberCreatesNothing(t *testing.T) {
	repo, path := testRepo(t)

	_, err := repo.Append("Push", "Bench Press", "x", "1")
	require.ErrorIs(t, err, store.ErrInvalidNumber)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRepo_Append_ZeroValues(t *testing.T) {
	repo, _ := testRepo(t)

	entry, err := repo.Append("Core", "Plank", "0", "0")
	require.NoError(t, err)
	assert.Zero(t, entry.Weight)
	assert.Zero(t, entry.Reps)
}

func TestRepo_Append_FileWithoutTrailingNewline(t *testing.T) {
	repo, path := testRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("date,day,exercise,weight,reps\n2024-01-01,Push,Bench Press,135.0,8"), 0o644))

	_, err := repo.Append("Push", "Dips", "0", "12")
	require.NoError(t, err)

	rows, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, workoutlog.Row{"2024-01-05", "Push", "Dips", "0.0", "12"}, rows[1])
}

func TestRepo_ReadAll_Missing(t *testing.T) {
	repo, _ := testRepo(t)

	rows, err := repo.ReadAll()
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRepo_ReadAll_HeaderHandling(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []workoutlog.Row
	}{
		{
			name:    "canonical header",
			content: "date,day,exercise,weight,reps\n2024-01-01,Push,Bench Press,135.0,8\n",
			want:    []workoutlog.Row{{"2024-01-01", "Push", "Bench Press", "135.0", "8"}},
		},
		{
			name:    "header in other case and padded",
			content: " Date , DAY,Exercise,Weight,Reps\n2024-01-01,Push,Bench Press,135.0,8\n",
			want:    []workoutlog.Row{{"2024-01-01", "Push", "Bench Press", "135.0", "8"}},
		},
		{
			name:    "no header",
			content: "2024-01-01,Push,Bench Press,135.0,8\n",
			want:    []workoutlog.Row{{"2024-01-01", "Push", "Bench Press", "135.0", "8"}},
		},
		{
			name:    "malformed rows kept verbatim",
			content: "date,day,exercise,weight,reps\n\n2024-01-01,Push\nbad,Push,Bench Press,lots,many\n",
			want: []workoutlog.Row{
				{"2024-01-01", "Push"},
				{"bad", "Push", "Bench Press", "lots", "many"},
			},
		},
		{
			name:    "header only",
			content: "date,day,exercise,weight,reps\n",
			want:    []workoutlog.Row{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, path := testRepo(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			rows, err := repo.ReadAll()
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestRepo_ReadAll_StrayQuotes(t *testing.T) {
	repo, path := testRepo(t)
	require.NoError(t, os.WriteFile(path, []byte(`date,day,exercise,weight,reps
2024-01-01,Push,Bench Press,135.0,8
2024-01-02,Arms,5" Curl,40,10
2024-01-03,Push,Bench Press,140.0,6
`), 0o644))

	rows, err := repo.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, workoutlog.Row{"2024-01-02", "Arms", `5" Curl`, "40", "10"}, rows[1])

	removed, err := repo.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, `5" Curl`, removed[workoutlog.ColExercise])
	assert.Equal(t, "date,day,exercise,weight,reps\n2024-01-01,Push,Bench Press,135.0,8\n2024-01-03,Push,Bench Press,140.0,6\n", readFile(t, path))
}

func TestRepo_ReadAll_Unreadable(t *testing.T) {
	path := t.TempDir()
	repo := workoutlog.NewRepo(path)

	_, err := repo.ReadAll()
	assert.ErrorIs(t, err, store.ErrStorageCorrupt)

	_, err = repo.RemoveAt(1)
	assert.ErrorIs(t, err, store.ErrStorageCorrupt)
}

func TestRepo_RemoveAt(t *testing.T) {
	repo, path := testRepo(t)
	faker := gofakeit.New(7)

	for i := 0; i < 6; i++ {
		_, err := repo.Append(
			faker.RandomString([]string{"push", "pull", "legs"}),
			faker.Word()+" "+faker.Word(),
			workoutlog.FormatWeight(float64(faker.Number(20, 400))),
			faker.Numerify("#"),
		)
		require.NoError(t, err)
	}

	for _, k := range []int{1, 3, 4} {
		before, err := repo.ReadAll()
		require.NoError(t, err)

		removed, err := repo.RemoveAt(k)
		require.NoError(t, err)
		assert.Equal(t, before[k-1], removed)

		after, err := repo.ReadAll()
		require.NoError(t, err)
		require.Len(t, after, len(before)-1)

		want := append(append([]workoutlog.Row{}, before[:k-1]...), before[k:]...)
		assert.Equal(t, want, after)
	}

	assert.True(t, strings.HasPrefix(readFile(t, path), "date,day,exercise,weight,reps\n"))
}

func TestRepo_RemoveAt_OutOfRange(t *testing.T) {
	repo, path := testRepo(t)
	_, err := repo.Append("Push", "Bench Press", "135", "8")
	require.NoError(t, err)
	_, err = repo.Append("Push", "Dips", "0", "12")
	require.NoError(t, err)
	before := readFile(t, path)

	for _, k := range []int{-1, 0, 3, 100} {
		_, err := repo.RemoveAt(k)
		assert.ErrorIs(t, err, store.ErrOutOfRange, "position %d", k)
	}
	assert.Equal(t, before, readFile(t, path))
}

func TestRepo_RemoveAt_Missing(t *testing.T) {
	repo, path := testRepo(t)

	_, err := repo.RemoveAt(1)
	assert.ErrorIs(t, err, store.ErrOutOfRange)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRepo_RemoveAt_NoHeader(t *testing.T) {
	repo, path := testRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("2024-01-01,Push,Bench Press,135.0,8\n2024-01-02,Pull,Deadlift,225.0,5\n"), 0o644))

	removed, err := repo.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, workoutlog.Row{"2024-01-01", "Push", "Bench Press", "135.0", "8"}, removed)
	assert.Equal(t, "2024-01-02,Pull,Deadlift,225.0,5\n", readFile(t, path))
}

func TestRepo_RemoveAt_KeepsFileHeader(t *testing.T) {
	repo, path := testRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("DATE,Day,EXERCISE,Weight,Reps\n2024-01-01,Push,Bench Press,135.0,8\n2024-01-02,Pull,Deadlift,225.0,5\n"), 0o644))

	_, err := repo.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, "DATE,Day,EXERCISE,Weight,Reps\n2024-01-01,Push,Bench Press,135.0,8\n", readFile(t, path))
}
