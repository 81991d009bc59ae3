package git

import (
	"errors"

	"github.com/gorewood/simplegit/internal/output"
)

// ErrInvalidArgument marks a caller-contract violation detected before any
// process is spawned. Hosts translate it into a client error.
var ErrInvalidArgument = errors.New("invalid argument")

// invalidArgument builds a user error for a missing or empty argument.
func invalidArgument(name string) error {
	return output.NewUserErrorWithCause(
		"invalid argument. Must provide a valid "+name+" argument.",
		ErrInvalidArgument,
	)
}
