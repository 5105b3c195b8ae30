// Package tui is the three-tab terminal front end: a form to log a set, a
// table of the whole log, and a progress chart for one exercise.
package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gymtrack/internal/chart"
	"gymtrack/internal/progress"
	"gymtrack/internal/store"
	"gymtrack/internal/workoutlog"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

const (
	tabLog = iota
	tabView
	tabChart
)

var tabNames = []string{"Log Workout", "View Logs", "Progress Chart"}

const (
	fieldDay = iota
	fieldExercise
	fieldWeight
	fieldReps
)

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 2).Border(lipgloss.RoundedBorder(), true, true, false, true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 2).Border(lipgloss.RoundedBorder(), true, true, false, true)
	labelStyle       = lipgloss.NewStyle().Width(14)
	okStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Model struct {
	repo *workoutlog.Repo

	tab    int
	inputs []textinput.Model
	focus  int

	table table.Model

	chartInput textinput.Model
	chartView  string

	status    string
	statusErr bool
}

func New(repo *workoutlog.Repo) Model {
	labels := []string{"Push", "Bench Press", "135", "8"}
	inputs := make([]textinput.Model, len(labels))
	for i, placeholder := range labels {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		inputs[i] = ti
	}
	inputs[fieldDay].Focus()

	chartInput := textinput.New()
	chartInput.Placeholder = "Bench Press"
	chartInput.CharLimit = 64

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 10},
			{Title: "Day", Width: 10},
			{Title: "Exercise", Width: 22},
			{Title: "Weight", Width: 8},
			{Title: "Reps", Width: 5},
		}),
		table.WithHeight(15),
		table.WithFocused(true),
	)

	m := Model{
		repo:       repo,
		inputs:     inputs,
		table:      t,
		chartInput: chartInput,
	}
	m.refreshTable()
	return m
}

// Run starts the UI and blocks until the user quits.
func Run(repo *workoutlog.Repo) error {
	_, err := tea.NewProgram(New(repo), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		return m.switchTab((m.tab + 1) % len(tabNames))
	case "shift+tab":
		return m.switchTab((m.tab + len(tabNames) - 1) % len(tabNames))
	}

	switch m.tab {
	case tabLog:
		switch keyMsg.String() {
		case "up":
			return m.focusField(m.focus - 1)
		case "down":
			return m.focusField(m.focus + 1)
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m.focusField(m.focus + 1)
			}
			m.saveWorkout()
			return m.focusField(fieldDay)
		}
	case tabView:
		if keyMsg.String() == "r" {
			m.refreshTable()
			return m, nil
		}
	case tabChart:
		if keyMsg.String() == "enter" {
			m.showChart()
			return m, nil
		}
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.tab {
	case tabLog:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case tabView:
		m.table, cmd = m.table.Update(msg)
	case tabChart:
		m.chartInput, cmd = m.chartInput.Update(msg)
	}
	return m, cmd
}

func (m Model) switchTab(tab int) (tea.Model, tea.Cmd) {
	m.tab = tab
	m.status = ""
	switch tab {
	case tabView:
		m.refreshTable()
		m.chartInput.Blur()
	case tabChart:
		cmd := m.chartInput.Focus()
		return m, cmd
	default:
		m.chartInput.Blur()
	}
	return m, nil
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	if i < 0 {
		i = len(m.inputs) - 1
	}
	m.focus = i % len(m.inputs)
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return m, cmd
}

func (m *Model) saveWorkout() {
	day := m.inputs[fieldDay].Value()
	exercise := m.inputs[fieldExercise].Value()
	if strings.TrimSpace(day) == "" || strings.TrimSpace(exercise) == "" {
		m.setStatus(errors.New("enter a day and an exercise"))
		return
	}

	entry, err := m.repo.Append(day, exercise, m.inputs[fieldWeight].Value(), m.inputs[fieldReps].Value())
	if err != nil {
		if errors.Is(err, store.ErrInvalidNumber) {
			err = errors.New("please enter valid numbers for weight and reps")
		}
		m.setStatus(err)
		return
	}

	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.status = fmt.Sprintf("Logged %s: %s lbs x %d reps", entry.Exercise, workoutlog.FormatWeight(entry.Weight), entry.Reps)
	m.statusErr = false
	m.refreshTable()
}

func (m *Model) refreshTable() {
	rows, err := m.repo.ReadAll()
	if err != nil {
		log.Errorf("tui: read workout log: %s", err)
		m.setStatus(err)
		return
	}
	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, table.Row{
			row.Field(workoutlog.ColDate),
			row.Field(workoutlog.ColDay),
			row.Field(workoutlog.ColExercise),
			row.Field(workoutlog.ColWeight),
			row.Field(workoutlog.ColReps),
		})
	}
	m.table.SetRows(tableRows)
}

func (m *Model) showChart() {
	name := store.TitleName(m.chartInput.Value())
	if name == "" {
		m.chartView = ""
		m.setStatus(errors.New("enter an exercise name"))
		return
	}

	rows, err := m.repo.ReadAll()
	if err != nil {
		m.setStatus(err)
		return
	}

	var buf bytes.Buffer
	err = chart.Render(&buf, progress.Query(rows, name), chart.Options{Height: 10, Width: 50, Color: true})
	if errors.Is(err, store.ErrNoData) {
		m.chartView = ""
		m.status = fmt.Sprintf("No logs found for %s.", name)
		m.statusErr = false
		return
	}
	if err != nil {
		m.setStatus(err)
		return
	}
	m.chartView = buf.String()
	m.status = ""
}

func (m *Model) setStatus(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) View() string {
	var b strings.Builder

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...))
	b.WriteString("\n\n")

	switch m.tab {
	case tabLog:
		labels := []string{"Workout Day:", "Exercise:", "Weight (lbs):", "Reps:"}
		for i, input := range m.inputs {
			b.WriteString(labelStyle.Render(labels[i]))
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("\nenter: next field / save  up/down: move"))
	case tabView:
		b.WriteString(m.table.View())
		b.WriteString(helpStyle.Render("\nr: refresh"))
	case tabChart:
		b.WriteString(labelStyle.Render("Exercise name:"))
		b.WriteString(m.chartInput.View())
		b.WriteString("\n\n")
		b.WriteString(m.chartView)
		b.WriteString(helpStyle.Render("\nenter: show chart"))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		if m.statusErr {
			b.WriteString(errStyle.Render(m.status))
		} else {
			b.WriteString(okStyle.Render(m.status))
		}
	}
	b.WriteString(helpStyle.Render("\n\ntab: switch tab  esc: quit"))
	return b.String()
}
