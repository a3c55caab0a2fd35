package fs

import "fmt"

// SourceOpenError reports that the named source could not be opened.
type SourceOpenError struct {
	Name string
	Err  error
}

func (e *SourceOpenError) Error() string {
	return fmt.Sprintf("Failed to open %s: %v", e.Name, e.Err)
}

func (e *SourceOpenError) Unwrap() error { return e.Err }

// ReadError reports a fault while reading an already opened source.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// MalformedLineError reports a line that does not decode to valid UTF-8.
// Line is 1-based.
type MalformedLineError struct {
	Name string
	Line int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("read %s: line %d is not valid UTF-8", e.Name, e.Line)
}
