package git

import (
	"context"
	"strings"
)

// CheckoutBranch switches to branch, creating it when it does not exist.
//
// A quiet show-ref probe decides whether -b is passed. The probe's own
// failure is never reported; only the checkout result is.
func (r *Repo) CheckoutBranch(ctx context.Context, branch string) (Ack, error) {
	if strings.TrimSpace(branch) == "" {
		return Ack{}, invalidArgument("branch")
	}

	args := []string{"checkout"}
	if !r.branchExists(ctx, branch) {
		args = append(args, "-b")
	}
	args = append(args, branch)
	return r.Execute(ctx, args...), nil
}

// branchExists probes refs/heads/<branch> without touching the work tree.
func (r *Repo) branchExists(ctx context.Context, branch string) bool {
	return r.Execute(ctx, "show-ref", "--quiet", "refs/heads/"+branch).OK()
}

// DeleteBranch deletes a local branch. force adds -f so unmerged branches
// are removed too.
func (r *Repo) DeleteBranch(ctx context.Context, branch string, force bool) (Ack, error) {
	if strings.TrimSpace(branch) == "" {
		return Ack{}, invalidArgument("branch")
	}

	args := []string{"branch", "-d"}
	if force {
		args = append(args, "-f")
	}
	args = append(args, branch)
	return r.Execute(ctx, args...), nil
}

// Commit records the index with a subject and an optional body.
func (r *Repo) Commit(ctx context.Context, subject, body string) (Ack, error) {
	if subject == "" {
		return Ack{}, invalidArgument("subject")
	}

	args := []string{"commit", "-m", subject}
	if body != "" {
		args = append(args, "-m", body)
	}
	return r.Execute(ctx, args...), nil
}

// Push updates remote with branch. An empty branch pushes the current
// branch; if that cannot be resolved, its failure is returned instead.
func (r *Repo) Push(ctx context.Context, remote, branch string) (Ack, error) {
	if strings.TrimSpace(remote) == "" {
		return Ack{}, invalidArgument("remote")
	}

	if branch == "" {
		current := r.CurrentBranch(ctx)
		if !current.OK() {
			return failed[struct{}](current), nil
		}
		branch = current.Value
	}
	return r.Execute(ctx, "push", remote, branch), nil
}
