package errs

import "errors"

// ExitCodeable is implemented by errors that carry a process exit code
type ExitCodeable interface {
	ExitCode() int
}

// ExitCode wraps an error with the exit code the process should terminate
// with. The wrapped error may be nil if the exit code is the only thing we
// need to communicate (eg. a launched application failing on its own terms).
type ExitCode struct {
	code       int
	wrappedErr error
}

// WrapExitCode wraps the given error with an exit code
func WrapExitCode(err error, code int) error {
	return &ExitCode{code, err}
}

func (e *ExitCode) Error() string {
	return "ExitCode"
}

func (e *ExitCode) Unwrap() error {
	return e.wrappedErr
}

func (e *ExitCode) ExitCode() int {
	return e.code
}

// UnwrapExitCode returns the exit code carried by the error chain, defaulting
// to 1 for errors that carry none and 0 for nil
func UnwrapExitCode(err error) int {
	if err == nil {
		return 0
	}

	var eerr ExitCodeable
	if errors.As(err, &eerr) {
		return eerr.ExitCode()
	}

	return 1
}
