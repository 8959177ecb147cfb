package codeerrors

import "fmt"

// Error is a coded error returned by the collections and their collaborators.
// Two errors match with errors.Is when their codes are equal.
type Error struct {
	Code    string
	Message string
	Reason  error
}

// Error implements standard error interface
func (e Error) Error() string {
	msg := e.Message + " (code=" + e.Code + ")"
	if e.Reason != nil {
		msg += ": " + e.Reason.Error()
	}
	return msg
}

// Cause implements errors.Causer
func (e Error) Cause() error {
	return e.Reason
}

// Unwrap provides compatibility with Go 1.13+ error chains
func (e Error) Unwrap() error {
	return e.Reason
}

// Is consults Go1.13+ errors.Is
func (e Error) Is(target error) bool {
	if tErr, ok := target.(Error); ok {
		return e.Code == tErr.Code
	}
	if tErr, ok := target.(*Error); ok {
		return e.Code == tErr.Code
	}
	return false
}

// WithMessage returns an error with formatted message
func (e Error) WithMessage(msg string, args ...interface{}) Error {
	e.Message = fmt.Sprintf(msg, args...)
	return e
}

// WithReason returns cloned error with given reason
func (e Error) WithReason(err error) Error {
	e.Reason = err
	return e
}

// HasCode reports whether err is a coded error with the given code anywhere in its chain
func HasCode(err error, code string) bool {
	for err != nil {
		switch e := err.(type) {
		case Error:
			if e.Code == code {
				return true
			}
		case *Error:
			if e.Code == code {
				return true
			}
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
