package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorewood/simplegit/internal/output"
)

// Repo runs git commands against one repository root.
type Repo struct {
	root   string
	runner Runner
}

// Option configures a Repo at construction.
type Option func(*Repo)

// WithRunner replaces the process runner (tests use a recording fake).
func WithRunner(runner Runner) Option {
	return func(r *Repo) {
		if runner != nil {
			r.runner = runner
		}
	}
}

// WithBinary sets the git executable used by the default runner.
func WithBinary(bin string) Option {
	return func(r *Repo) {
		r.runner = NewExecRunner(bin)
	}
}

// Open binds a Repo to root after expanding "~" and resolving symlinks.
// It fails only when the root cannot be resolved to a path at all.
func Open(root string, opts ...Option) (*Repo, error) {
	resolved, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}

	repo := &Repo{root: resolved, runner: NewExecRunner("")}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

// ResolveRoot canonicalizes a repository root. Paths that do not exist yet
// are returned cleaned and absolute.
func ResolveRoot(root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", output.NewUserError("repository root is required")
	}

	expanded, err := expandHome(root)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", output.NewSystemErrorWithCause("cannot resolve repository root "+root, err)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return abs, nil
		}
		return "", output.NewSystemErrorWithCause("cannot resolve repository root "+root, err)
	}
	return canonical, nil
}

// expandHome replaces a leading "~" or "~/" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", output.NewSystemErrorWithCause("cannot expand ~ in repository root", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Root returns the canonical repository root.
func (r *Repo) Root() string {
	return r.root
}

// Execute runs git with args in the repository root and returns the raw
// trimmed output as the message.
func (r *Repo) Execute(ctx context.Context, args ...string) Ack {
	return run(ctx, r, "", func(string) struct{} { return struct{}{} }, args)
}

// run is the shared run-and-capture primitive. parse is applied to the
// trimmed output only when git exits 0; its result is published under field.
// An empty field makes a raw result whose payload is the message.
func run[T any](ctx context.Context, r *Repo, field string, parse func(string) T, args []string) Result[T] {
	out, code, err := r.runner.Run(ctx, r.root, args...)
	if code != 0 || err != nil {
		if code == 0 {
			code = ExitStartFailure
		}
		msg := string(out)
		if strings.TrimSpace(msg) == "" && err != nil {
			msg = err.Error()
		}
		if strings.TrimSpace(msg) == "" {
			msg = "git " + strings.Join(args, " ") + ": exit status " + strconv.Itoa(code)
		}
		return Result[T]{Code: code, Message: msg}
	}

	text := strings.TrimSpace(string(out))
	if field == "" {
		return Result[T]{Message: text}
	}
	return Result[T]{Value: parse(text), field: field}
}
