package main

import (
	"fmt"
	"io"

	"gymtrack/internal/store"

	"github.com/nexidian/gocliselect"
)

// Selector asks the user to pick one of options and returns its 1-based
// index.
type Selector interface {
	Select(title string, options []string) (int, error)
}

// lineSelector prints a numbered list and reads the choice as a line of text.
type lineSelector struct {
	a *App
}

func (s lineSelector) Select(title string, options []string) (int, error) {
	fmt.Fprintf(s.a.out, "---- %s ----\n", title)
	for i, option := range options {
		fmt.Fprintf(s.a.out, "%d. %s\n", i+1, option)
	}
	raw, err := s.a.prompt("> ")
	if err != nil {
		return 0, err
	}
	return store.ParseSelection(raw, len(options))
}

// arrowSelector shows an arrow-key menu; it needs a real terminal on stdin.
type arrowSelector struct{}

func (arrowSelector) Select(title string, options []string) (int, error) {
	menu := gocliselect.NewMenu(title)
	for i, option := range options {
		menu.AddItem(option, i+1)
	}

	res, err := menu.Display()
	if err != nil {
		return 0, err
	}
	return arrowChoice(res, len(options))
}

// arrowChoice turns the id returned by the menu into a 1-based index. The
// menu returns no id when it is aborted with ctrl+c or escape.
func arrowChoice(res any, n int) (int, error) {
	choice, ok := res.(int)
	if !ok {
		return 0, io.EOF
	}
	if err := store.CheckRange(choice, n); err != nil {
		return 0, err
	}
	return choice, nil
}
