package models

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySeries is returned when no bars survive cleaning.
	ErrEmptySeries = errors.New("series is empty after cleaning")

	// ErrNoData is returned when the market-data provider has no bars
	// for the requested symbol and range.
	ErrNoData = errors.New("no data found")
)

// InsufficientHistoryError reports that an indicator needs more bars
// than the series provides. It names the indicator and its minimum so
// callers never have to guess why a value is missing.
type InsufficientHistoryError struct {
	Indicator string
	Required  int
	Have      int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("%s requires at least %d bars, have %d", e.Indicator, e.Required, e.Have)
}

// InvalidColumnError reports an unknown column name.
type InvalidColumnError struct {
	Column string
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// DegenerateStatisticsError reports a computation whose statistical
// inputs collapse (for example a zero standard deviation where one is
// required), handled explicitly instead of dividing by zero.
type DegenerateStatisticsError struct {
	Op string
}

func (e *DegenerateStatisticsError) Error() string {
	return fmt.Sprintf("degenerate statistics in %s", e.Op)
}
