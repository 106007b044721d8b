package sampledata

import "errors"

// Defaults used by cmd/sample-data.
const (
	DefaultCount = 50
	DefaultSeed  = 1
)

var (
	// ErrInvalidCount is returned for a negative row count.
	ErrInvalidCount = errors.New("count must be >= 0")
	// ErrInvalidRatio is returned when the invalid row ratio is outside [0, 1].
	ErrInvalidRatio = errors.New("invalid ratio must be between 0 and 1")
)

// Config controls the generated file.
type Config struct {
	Count        int     // Number of data rows
	Seed         uint64  // Seed for the random source; equal seeds give equal output
	InvalidRatio float64 // Share of rows with a corrupted completed_tasks value
}

// Stats describes a generated file.
type Stats struct {
	Rows    int
	Invalid int
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Count < 0 {
		return ErrInvalidCount
	}
	if c.InvalidRatio < 0 || c.InvalidRatio > 1 {
		return ErrInvalidRatio
	}
	return nil
}
