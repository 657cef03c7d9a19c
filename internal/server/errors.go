package server

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes facade failures.
type ErrorCode string

const (
	// ErrCodeConnection indicates the store could not be opened or
	// initialized. Fatal to the process.
	ErrCodeConnection ErrorCode = "CONNECTION"

	// ErrCodeStatement indicates the store rejected a rendered statement:
	// syntax, or a constraint violation such as a dangling foreign key.
	ErrCodeStatement ErrorCode = "STATEMENT"

	// ErrCodeMapping indicates a result row could not be decoded into its
	// target entity.
	ErrCodeMapping ErrorCode = "MAPPING"

	// ErrCodeMisuse indicates the caller asked for an operation that
	// would render malformed or unintended SQL, such as an update with
	// zero non-untouched actions. Caught before a statement is built.
	ErrCodeMisuse ErrorCode = "MISUSE"
)

// Error is a typed facade failure. Nothing is retried; every failure
// surfaces synchronously to the immediate caller.
type Error struct {
	Code ErrorCode
	Op   string // e.g. "add task", "select projects"
	Err  error  // underlying cause (optional)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsMisuse reports whether the error is a caller-misuse error.
// Uses errors.As to handle wrapped errors.
func IsMisuse(err error) bool {
	return hasCode(err, ErrCodeMisuse)
}

// IsStatement reports whether the store rejected a rendered statement.
func IsStatement(err error) bool {
	return hasCode(err, ErrCodeStatement)
}

// IsConnection reports whether opening or initializing the store failed.
func IsConnection(err error) bool {
	return hasCode(err, ErrCodeConnection)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func connectionError(op string, err error) *Error {
	return &Error{Code: ErrCodeConnection, Op: op, Err: err}
}

func statementError(op string, err error) *Error {
	return &Error{Code: ErrCodeStatement, Op: op, Err: err}
}

func misuseError(op, msg string) *Error {
	return &Error{Code: ErrCodeMisuse, Op: op, Err: errors.New(msg)}
}
