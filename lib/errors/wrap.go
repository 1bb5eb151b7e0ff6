package errors

import (
	"runtime"
)

// wrap is the internal error type used to attach information to an underlying
// error. As information gets attached, the error is wrapped in successive
// wrap structures, each carrying a trace location and optionally the
// user-facing status, code and message.
type wrap struct {
	traceFile string
	traceLine int

	traceMessage string

	errStatus  int
	errCode    string
	errMessage string

	previous error
}

// Status returns the most recent user-facing status attached to the error.
func (e *wrap) Status() int {
	if e.errStatus != 0 {
		return e.errStatus
	}
	switch e := e.previous.(type) {
	case *wrap:
		return e.Status()
	default:
		return 0
	}
}

// Code returns the most recent user-facing code attached to the error.
func (e *wrap) Code() string {
	if e.errCode != "" {
		return e.errCode
	}
	switch e := e.previous.(type) {
	case *wrap:
		return e.Code()
	default:
		return ""
	}
}

// Message returns the most recent user-facing message attached to the error.
func (e *wrap) Message() string {
	if e.errMessage != "" {
		return e.errMessage
	}
	switch e := e.previous.(type) {
	case *wrap:
		return e.Message()
	default:
		return ""
	}
}

// Cause returns the underlying error if not nil.
func (e *wrap) Cause() error {
	switch p := e.previous.(type) {
	case *wrap:
		return p.Cause()
	default:
		return p
	}
}

// Error returns the error message of the underlying error if not nil,
// otherwise the user-facing message.
func (e *wrap) Error() string {
	err := e.Cause()
	if err != nil {
		return err.Error()
	}
	return e.Message()
}

func (e *wrap) setLocation(callDepth int) {
	_, file, line, _ := runtime.Caller(callDepth + 1)
	e.traceFile = file
	e.traceLine = line
}

func (e *wrap) location() (filename string, line int) {
	return e.traceFile, e.traceLine
}
