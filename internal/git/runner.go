package git

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// ExitStartFailure is the code reported when git could not be started at
// all (binary missing, root directory missing, permission denied).
const ExitStartFailure = 127

// Runner executes the git binary in a directory.
//
// Implementations merge stdout and stderr into the returned output. code is
// the process exit status. err is non-nil only when the process could not
// be started or waited for; code is then non-zero as well.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (output []byte, code int, err error)
}

// ExecRunner runs a git executable found through PATH.
type ExecRunner struct {
	Bin string
}

// NewExecRunner returns a runner for bin, falling back to "git".
func NewExecRunner(bin string) *ExecRunner {
	if strings.TrimSpace(bin) == "" {
		bin = "git"
	}
	return &ExecRunner{Bin: bin}
}

// Run implements Runner.
func (e *ExecRunner) Run(ctx context.Context, dir string, args ...string) ([]byte, int, error) {
	cmd := exec.CommandContext(ctx, e.Bin, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err == nil {
		return out, 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == -1 {
			// Killed by a signal, usually context cancellation.
			return out, code, ctxErrOr(ctx, err)
		}
		return out, code, nil
	}

	return out, ExitStartFailure, err
}

func ctxErrOr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
