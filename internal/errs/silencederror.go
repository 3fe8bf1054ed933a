package errs

import "errors"

type silencedError struct {
	error
}

// Silence wraps an error such that no user-facing diagnostic is printed for
// it. Used when the failure has already been communicated by other means, eg.
// by a launched application writing to its own stderr.
func Silence(err error) error {
	return &silencedError{err}
}

func (s *silencedError) Unwrap() error { return s.error }

func (s *silencedError) IsSilent() bool { return true }

// IsSilent checks the error chain for a silenced error
func IsSilent(err error) bool {
	var silentErr interface {
		IsSilent() bool
	}
	return errors.As(err, &silentErr) && silentErr.IsSilent()
}
