package main

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

func PrintTable(w io.Writer, headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && utf8.RuneCountInString(cell) > colWidths[i] {
				colWidths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	// print header
	printRow(w, colWidths, headers)

	// print rows
	for _, row := range rows {
		printRow(w, colWidths, row)
	}

	// print footer
	if len(footers) > 0 {
		printRow(w, colWidths, footers)
	}
}

func printRow(w io.Writer, colWidths []int, cells []string) {
	for i, width := range colWidths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		fmt.Fprintf(w, "%-*s  ", width, cell)
	}
	fmt.Fprintln(w)
}

// numbered prints options as a 1-based list.
func numbered(w io.Writer, title string, options []string) {
	fmt.Fprintf(w, "\n-- %s --\n", title)
	for i, option := range options {
		fmt.Fprintf(w, "%d. %s\n", i+1, option)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
