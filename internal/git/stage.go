package git

import (
	"context"
	"os"
)

// Add stages paths. updateAll adds -A so removals and untracked files are
// staged as well. A zero Pathspec stages ".".
func (r *Repo) Add(ctx context.Context, paths Pathspec, updateAll bool) Ack {
	args := []string{"add"}
	if updateAll {
		args = append(args, "-A")
	}
	args = append(args, paths.orDefault(defaultPath).Args()...)
	return r.Execute(ctx, args...)
}

// Reset unstages paths. A zero Pathspec unstages everything.
func (r *Repo) Reset(ctx context.Context, paths Pathspec) Ack {
	args := append([]string{"reset"}, paths.Args()...)
	return r.Execute(ctx, args...)
}

// DeleteUntrackedFiles removes untracked files and directories under path.
func (r *Repo) DeleteUntrackedFiles(ctx context.Context, path string) Ack {
	return r.Execute(ctx, "clean", "-df", pathOrDefault(path))
}

// FetchOptions controls Fetch.
type FetchOptions struct {
	// Remote to fetch from; empty lets git pick the default.
	Remote string
	// Prune removes remote-tracking refs that no longer exist upstream.
	Prune bool
	// All fetches every configured remote.
	All bool
}

// Fetch downloads objects and refs from a remote.
func (r *Repo) Fetch(ctx context.Context, opts FetchOptions) Ack {
	args := []string{"fetch"}
	if opts.Prune {
		args = append(args, "--prune")
	}
	if opts.All {
		args = append(args, "--all")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
	}
	return r.Execute(ctx, args...)
}

// Init creates a repository at the root, or reinitializes an existing one.
// A missing root directory is created first; if that fails the result is a
// start failure and git is not run.
func (r *Repo) Init(ctx context.Context) Ack {
	if err := os.MkdirAll(r.root, 0o755); err != nil {
		return Ack{Code: ExitStartFailure, Message: err.Error()}
	}
	return r.Execute(ctx, "init")
}
