package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrStorageCorrupt   = errors.New("storage corrupt")
	ErrEmptyName        = errors.New("name must not be empty")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrOutOfRange       = errors.New("selection out of range")
	ErrNoData           = errors.New("no data")
)

// ParseSelection parses a 1-based menu/index choice against n options.
func ParseSelection(raw string, n int) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSelection, raw)
	}
	if err := CheckRange(idx, n); err != nil {
		return 0, err
	}
	return idx, nil
}

// CheckRange reports ErrOutOfRange unless 1 <= idx <= n.
func CheckRange(idx, n int) error {
	if idx < 1 || idx > n {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRange, idx, n)
	}
	return nil
}
