package errors

import "fmt"

// ConfigError represents errors related to loading or validating configuration
type ConfigError struct {
	Op  string
	Err error
}

func (e ConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("config %s failed", e.Op)
	}
	return fmt.Sprintf("config %s failed: %v", e.Op, e.Err)
}

func (e ConfigError) Unwrap() error { return e.Err }

// MeasureError represents a text measurement that could not complete.
// It is recorded and logged by the fitting engine, never returned to a host.
type MeasureError struct {
	Op  string
	Err error
}

func (e MeasureError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("measure %s failed", e.Op)
	}
	return fmt.Sprintf("measure %s failed: %v", e.Op, e.Err)
}

func (e MeasureError) Unwrap() error { return e.Err }

// FontError represents an unparseable font descriptor
type FontError struct {
	Descriptor string
	Err        error
}

func (e FontError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("font %q invalid", e.Descriptor)
	}
	return fmt.Sprintf("font %q invalid: %v", e.Descriptor, e.Err)
}

func (e FontError) Unwrap() error { return e.Err }
