package domain

import (
	"errors"
	"sort"
	"time"
)

const (
	// DefaultRotationDays is the length of each custody turn produced by
	// the generator.
	DefaultRotationDays = 3

	// DefaultMaxConsecutiveDays is the hard cap on consecutive overnight
	// assignments for one party.
	DefaultMaxConsecutiveDays = 4
)

var ErrInvalidRotationConfig = errors.New("rotation days and max consecutive days must be positive")

// RotationConfig carries the rotation geometry. It is passed explicitly so
// the core holds no package-level state.
type RotationConfig struct {
	RotationDays       int
	MaxConsecutiveDays int
}

// DefaultRotationConfig returns the standard 3-day rotation with a 4-day cap.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		RotationDays:       DefaultRotationDays,
		MaxConsecutiveDays: DefaultMaxConsecutiveDays,
	}
}

// Validate checks the configuration is usable.
func (c RotationConfig) Validate() error {
	if c.RotationDays <= 0 || c.MaxConsecutiveDays <= 0 {
		return ErrInvalidRotationConfig
	}
	return nil
}

// NormalizeDate truncates a timestamp to its calendar date at UTC midnight.
// All entry map keys go through this so that lookups are exact.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortDates(dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
}
