package cli

import (
	"errors"

	"github.com/stockroom/pagenav/internal/cli/pagination"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageErrors are the errors caused by invalid flags rather than by the data or
// environment.
//
//nolint:gochecknoglobals // fixed lookup table
var usageErrors = []error{
	ErrUnsupportedOutput,
	ErrNoListingFiles,
	pagination.ErrInvalidPage,
	pagination.ErrInvalidPageSize,
	pagination.ErrInvalidDelta,
	pagination.ErrInvalidSortOrder,
	pagination.ErrInvalidSortFormat,
	pagination.ErrEmptySortField,
	pagination.ErrInvalidSortField,
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return ExitUsage
		}
	}
	return ExitError
}
