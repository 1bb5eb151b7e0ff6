package errors

import (
	"fmt"
)

// UserError is the interface an error has to comply to to be consumable by an
// external client of the system. It carries the HTTP status to respond with
// along with a stable error code and a human-readable message.
type UserError interface {
	error
	Status() int
	Code() string
	Message() string
	Cause() error
}

// NewUserError creates a new UserError with the specified status, code and
// message, marking err as its cause (err may be nil).
func NewUserError(
	err error,
	status int,
	code string,
	message string,
) UserError {
	e := &wrap{
		errStatus:  status,
		errCode:    code,
		errMessage: message,
		previous:   err,
	}
	e.setLocation(1)
	return e
}

// NewUserErrorf creates a new UserError with the specified status, code and
// formatted message, marking err as its cause (err may be nil).
func NewUserErrorf(
	err error,
	status int,
	code string,
	format string,
	args ...interface{},
) UserError {
	e := &wrap{
		errStatus:  status,
		errCode:    code,
		errMessage: fmt.Sprintf(format, args...),
		previous:   err,
	}
	e.setLocation(1)
	return e
}

// ExtractUserError walks the error chain and returns the most recent
// UserError attached to it, or nil if none is found.
func ExtractUserError(err error) UserError {
	for err != nil {
		e, ok := err.(*wrap)
		if !ok {
			return nil
		}
		if e.errStatus != 0 {
			return e
		}
		err = e.previous
	}
	return nil
}

// ConcreteUserError is the materialization of a UserError for marshalling.
type ConcreteUserError struct {
	ErrCode    string `json:"code"`
	ErrMessage string `json:"message"`
}

// Build constructs a ConcreteUserError from a UserError.
func Build(err UserError) *ConcreteUserError {
	return &ConcreteUserError{
		ErrCode:    err.Code(),
		ErrMessage: err.Message(),
	}
}
