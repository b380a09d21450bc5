package cli

import (
	"errors"

	"github.com/yaklabco/gomdbuild/pkg/config"
	"github.com/yaklabco/gomdbuild/pkg/docspec"
	"github.com/yaklabco/gomdbuild/pkg/fsutil"
	"github.com/yaklabco/gomdbuild/pkg/mdbuild"
)

// Exit codes for gomdbuild.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates an error not covered by a more specific code.
	ExitFailure = 1

	// ExitVerifyFailed indicates the rendered output failed verification.
	ExitVerifyFailed = 2

	// ExitDataError indicates an invalid document description.
	ExitDataError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 78
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrVerificationFailed):
		return ExitVerifyFailed
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, docspec.ErrUnknownBlock),
		errors.Is(err, docspec.ErrInvalidBlock),
		errors.Is(err, mdbuild.ErrInvalidAlignment):
		return ExitDataError
	case errors.Is(err, ErrInspectFailed),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitFailure
	}
}
