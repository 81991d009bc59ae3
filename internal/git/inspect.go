package git

import (
	"context"
	"strconv"
)

// Payload field names used in JSON envelopes.
const (
	FieldDifferences = "differences"
	FieldFiles       = "files"
	FieldHistory     = "history"
	FieldBranch      = "branch"
	FieldBranches    = "branches"
	FieldResults     = "results"
)

// defaultPath is used when a caller omits the path argument.
const defaultPath = "."

func pathOrDefault(path string) string {
	if path == "" {
		return defaultPath
	}
	return path
}

// Status returns the working tree status under path.
func (r *Repo) Status(ctx context.Context, path string) Result[[]StatusEntry] {
	args := []string{"status", "--porcelain", "--renames", pathOrDefault(path)}
	return run(ctx, r, FieldDifferences, parseStatus, args)
}

// ChangedFiles returns the files under path that differ from the index.
func (r *Repo) ChangedFiles(ctx context.Context, path string) Result[[]string] {
	args := []string{"diff", "--name-only", pathOrDefault(path)}
	return run(ctx, r, FieldFiles, parseLines, args)
}

// UntrackedFiles returns untracked files under path, honoring ignore rules.
func (r *Repo) UntrackedFiles(ctx context.Context, path string) Result[[]string] {
	args := []string{"ls-files", "-o", "--exclude-standard", pathOrDefault(path)}
	return run(ctx, r, FieldFiles, parseLines, args)
}

// CommitHistory returns commits touching path, newest first. n limits the
// number of commits; n <= 0 means no limit.
func (r *Repo) CommitHistory(ctx context.Context, path string, n int) Result[[]Commit] {
	args := []string{"log", historyFormat}
	if n > 0 {
		args = append(args, "-n", strconv.Itoa(n))
	}
	args = append(args, pathOrDefault(path))
	return run(ctx, r, FieldHistory, parseHistory, args)
}

// CurrentBranch returns the abbreviated name of HEAD.
func (r *Repo) CurrentBranch(ctx context.Context) Result[string] {
	args := []string{"rev-parse", "--abbrev-ref", "HEAD"}
	return run(ctx, r, FieldBranch, func(out string) string { return out }, args)
}

// LocalBranches lists local branch names in ref order.
func (r *Repo) LocalBranches(ctx context.Context) Result[[]string] {
	args := []string{"for-each-ref", "--format=%(refname:short)", "refs/heads/"}
	return run(ctx, r, FieldBranches, parseLines, args)
}

// Run passes args straight through to git. With no args it runs "git help".
// The output is published under "results".
func (r *Repo) Run(ctx context.Context, args ...string) Result[string] {
	if len(args) == 0 {
		args = []string{"help"}
	}
	return run(ctx, r, FieldResults, func(out string) string { return out }, args)
}
