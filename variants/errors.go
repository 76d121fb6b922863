package variants

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when a top-level required field is missing.
	// The whole generation produces no variants.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrLookup marks a shape, style, leather or price entry that could not be found
	ErrLookup = errors.New("lookup failed")
	// ErrAssembly marks a SKU or name that could not be built
	ErrAssembly = errors.New("assembly failed")
)

// Stages reported in ItemError and SkippedItem
const (
	StageRegular = "regular"
	StageCustom  = "custom"
)

// ItemError describes why a single variant was skipped
type ItemError struct {
	Stage   string
	ShapeID string
	Err     error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s variant for shape %q: %v", e.Stage, e.ShapeID, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

func lookupErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrLookup, fmt.Sprintf(format, args...))
}

func assemblyErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrAssembly, fmt.Sprintf(format, args...))
}

func configurationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
