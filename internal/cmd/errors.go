package cmd

import (
	"errors"
	"fmt"
)

// SilentExitError makes Execute return Code without printing anything.
// "msbee ids --check" uses it to report pending changes.
type SilentExitError struct {
	Code int
}

func (e *SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// NewSilentExit creates a SilentExitError with the given exit code.
func NewSilentExit(code int) *SilentExitError {
	return &SilentExitError{Code: code}
}

// IsSilentExit returns the code of a (possibly wrapped) SilentExitError.
func IsSilentExit(err error) (int, bool) {
	var se *SilentExitError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}
