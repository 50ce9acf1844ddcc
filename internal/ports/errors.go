package ports

import "fmt"

// ParseError is returned for a malformed or unrecognized size string.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse size %q: %s: %v", e.Input, e.Reason, e.Err)
	}
	return fmt.Sprintf("parse size %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError is returned when the output file cannot be opened, written or closed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
