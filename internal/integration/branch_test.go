//go:build integration

package integration

import (
	"os/exec"
	"strings"
	"testing"
)

func (r *testRepo) commitFile(name, msg string) {
	r.t.Helper()
	r.createFile(name, msg)
	r.envelope(0, "add", name)
	r.envelope(0, "commit", "-m", msg)
}

func TestBranch_CheckoutCreatesThenSwitches(t *testing.T) {
	repo := newTestRepo(t)
	repo.commitFile("a.txt", "first")

	repo.envelope(0, "checkout", "feature/x")
	if branch := repo.envelope(0, "branch"); branch["branch"] != "feature/x" {
		t.Fatalf("branch = %v", branch)
	}

	repo.envelope(0, "checkout", "main")
	if branch := repo.envelope(0, "branch"); branch["branch"] != "main" {
		t.Fatalf("branch = %v", branch)
	}

	branches := repo.envelope(0, "branches")
	list, _ := branches["branches"].([]any)
	if len(list) != 2 || list[0] != "feature/x" || list[1] != "main" {
		t.Errorf("branches = %v", branches)
	}
}

func TestBranch_DeleteUnmergedNeedsForce(t *testing.T) {
	repo := newTestRepo(t)
	repo.commitFile("a.txt", "first")

	repo.envelope(0, "checkout", "topic")
	repo.commitFile("b.txt", "topic work")
	repo.envelope(0, "checkout", "main")

	refused := repo.envelope(2, "delete-branch", "topic")
	if msg, _ := refused["message"].(string); !strings.Contains(msg, "not fully merged") {
		t.Errorf("unforced delete = %v", refused)
	}

	repo.envelope(0, "delete-branch", "--force", "topic")
	branches := repo.envelope(0, "branches")
	if list, _ := branches["branches"].([]any); len(list) != 1 {
		t.Errorf("branches after delete = %v", branches)
	}
}

func TestBranch_PushAndFetch(t *testing.T) {
	repo := newTestRepo(t)
	repo.commitFile("a.txt", "first")

	remote := t.TempDir()
	if out, err := exec.Command("git", "init", "--bare", remote).CombinedOutput(); err != nil {
		t.Fatalf("git init --bare: %v\n%s", err, out)
	}
	repo.git("remote", "add", "origin", remote)

	repo.envelope(0, "push", "origin")
	repo.envelope(0, "fetch", "--prune", "origin")

	remoteHead, err := exec.Command("git", "--git-dir", remote, "rev-parse", "main").Output()
	if err != nil {
		t.Fatalf("remote has no main: %v", err)
	}
	if strings.TrimSpace(string(remoteHead)) != repo.git("rev-parse", "HEAD") {
		t.Errorf("remote main = %s", remoteHead)
	}

	failed := repo.envelope(2, "push", "nowhere")
	if failed["code"] == float64(0) {
		t.Errorf("push to unknown remote = %v", failed)
	}
}
