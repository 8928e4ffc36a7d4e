package protocol

import "fmt"

// ErrParse is returned when an input line cannot be decoded into a Command.
type ErrParse struct {
	Line   string
	Reason string
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("failed to parse command %q: %s", e.Line, e.Reason)
}

// IsParseError reports whether err is an ErrParse.
func IsParseError(err error) bool {
	_, ok := err.(*ErrParse)
	return ok
}
