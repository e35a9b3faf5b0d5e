package output

import "errors"

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitUserError   = 1 // bad arguments, unknown template, invalid name, missing guest details
	ExitSystemError = 2 // template directory unreadable, record malformed, write failed
	ExitConflict    = 3 // template name already taken
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}

// WithCode attaches an exit code to err, keeping its message.
func WithCode(code int, err error) *ExitError {
	return &ExitError{Code: code, Message: err.Error(), Cause: err}
}

// NewUserError reports a problem the user can fix by changing the command.
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewSystemErrorWithCause reports a filesystem or encoding failure.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message, Cause: cause}
}

// GetExitCode returns the exit code for err: ExitSuccess for nil, the
// attached code for an ExitError anywhere in the chain, ExitUserError
// otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}
