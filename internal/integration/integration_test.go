//go:build integration

// Package integration provides integration tests for the simplegit CLI.
// These tests build the binary, create real git repositories and drive the
// CLI and the HTTP host end to end.
//
// Run with: go test -tags=integration ./internal/integration/...
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testRepo is a helper for creating and managing test git repositories.
type testRepo struct {
	t      *testing.T
	dir    string
	binary string
	env    []string
}

// newTestRepo builds simplegit and initializes a git repo in a temp dir.
func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()

	binary := filepath.Join(t.TempDir(), "simplegit")
	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/simplegit")
	buildCmd.Dir = findProjectRoot(t)
	buildCmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build simplegit: %v\n%s", err, output)
	}

	repo := &testRepo{
		t:      t,
		dir:    dir,
		binary: binary,
		env: append(os.Environ(),
			"SIMPLEGIT_CONFIG_HOME="+t.TempDir(),
			"SIMPLEGIT_ROOT=",
			"SIMPLEGIT_LOG_FORMAT=logfmt",
		),
	}

	repo.git("init", "--initial-branch=main")
	repo.git("config", "user.email", "test@example.com")
	repo.git("config", "user.name", "Test User")
	repo.git("config", "commit.gpgsign", "false")

	return repo
}

// findProjectRoot locates the project root by finding go.mod.
func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// git runs a git command in the test repo.
func (r *testRepo) git(args ...string) string {
	r.t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
	return strings.TrimSpace(string(output))
}

// createFile creates a file with the given content.
func (r *testRepo) createFile(name, content string) {
	r.t.Helper()

	path := filepath.Join(r.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("failed to write file %s: %v", name, err)
	}
}

// command prepares simplegit with args, run from the repo directory.
func (r *testRepo) command(args ...string) *exec.Cmd {
	cmd := exec.Command(r.binary, args...)
	cmd.Dir = r.dir
	cmd.Env = r.env
	return cmd
}

// simplegit runs the binary and returns stdout, stderr and the error.
func (r *testRepo) simplegit(args ...string) (string, string, error) {
	r.t.Helper()

	cmd := r.command(args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// envelope runs simplegit --json and decodes the envelope. It fails the
// test when the exit code differs from wantExit.
func (r *testRepo) envelope(wantExit int, args ...string) map[string]any {
	r.t.Helper()

	stdout, stderr, err := r.simplegit(append([]string{"--json"}, args...)...)
	if got := exitCode(err); got != wantExit {
		r.t.Fatalf("simplegit %v exit = %d, want %d\nstdout: %s\nstderr: %s", args, got, wantExit, stdout, stderr)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		r.t.Fatalf("simplegit %v output is not JSON: %v\n%s", args, err, stdout)
	}
	return result
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}

// TestStageCommitHistoryCycle tests the full workflow:
// untracked -> add -> commit -> history -> changed -> reset.
func TestStageCommitHistoryCycle(t *testing.T) {
	repo := newTestRepo(t)

	repo.createFile("README.md", "# Test Project")
	repo.createFile("main.go", "package main\nfunc main() {}")

	untracked := repo.envelope(0, "untracked")
	files, _ := untracked["files"].([]any)
	if len(files) != 2 {
		t.Fatalf("untracked files = %v", untracked)
	}

	repo.envelope(0, "add")
	status := repo.envelope(0, "status")
	diffs, _ := status["differences"].([]any)
	if len(diffs) != 2 || diffs[0].(map[string]any)["action"] != "added" {
		t.Fatalf("status after add = %v", status)
	}

	repo.envelope(0, "commit", "-m", "Initial commit", "-b", "With a body")

	repo.createFile("main.go", "package main\nfunc main() { println() }")
	changed := repo.envelope(0, "changed")
	if files, _ := changed["files"].([]any); len(files) != 1 || files[0] != "main.go" {
		t.Errorf("changed = %v", changed)
	}

	repo.envelope(0, "add", "--all=false", "main.go")
	repo.envelope(0, "commit", "-m", "Print something")

	history := repo.envelope(0, "history", "-n", "5")
	commits, _ := history["history"].([]any)
	if len(commits) != 2 {
		t.Fatalf("history = %v", history)
	}
	latest := commits[0].(map[string]any)
	if latest["message"] != "Print something" || latest["author"] != "Test User" {
		t.Errorf("latest commit = %v", latest)
	}
	if hash, _ := latest["hash"].(string); hash != repo.git("rev-parse", "HEAD") {
		t.Errorf("hash = %v", latest["hash"])
	}

	only := repo.envelope(0, "history", "README.md")
	if commits, _ := only["history"].([]any); len(commits) != 1 {
		t.Errorf("history README.md = %v", only)
	}

	repo.createFile("scratch.txt", "tmp")
	repo.envelope(0, "add", "scratch.txt")
	repo.envelope(0, "reset")
	status = repo.envelope(0, "status")
	diffs, _ = status["differences"].([]any)
	if len(diffs) != 1 || diffs[0].(map[string]any)["action"] != "untracked" {
		t.Errorf("status after reset = %v", status)
	}

	repo.envelope(0, "clean")
	if _, err := os.Stat(filepath.Join(repo.dir, "scratch.txt")); !os.IsNotExist(err) {
		t.Errorf("clean should remove scratch.txt, stat err = %v", err)
	}
}

// TestRenameStatus checks the from/to split for staged renames.
func TestRenameStatus(t *testing.T) {
	repo := newTestRepo(t)
	repo.createFile("old.txt", "content that is long enough to be detected as a rename\n")
	repo.envelope(0, "add")
	repo.envelope(0, "commit", "-m", "add old")

	repo.git("mv", "old.txt", "new.txt")
	status := repo.envelope(0, "status")
	diffs, _ := status["differences"].([]any)
	if len(diffs) != 1 {
		t.Fatalf("status = %v", status)
	}
	entry := diffs[0].(map[string]any)
	if entry["action"] != "renamed" || entry["from"] != "old.txt" || entry["to"] != "new.txt" {
		t.Errorf("rename entry = %v", entry)
	}
}

// TestErrorNotGitRepo checks failure envelopes outside a repository.
func TestErrorNotGitRepo(t *testing.T) {
	repo := newTestRepo(t)
	outside := t.TempDir()
	repo.env = append(repo.env, "GIT_CEILING_DIRECTORIES="+filepath.Dir(outside))

	for _, args := range [][]string{
		{"--repo", outside, "status"},
		{"--repo", outside, "branch"},
		{"--repo", outside, "history"},
	} {
		result := repo.envelope(2, args...)
		if result["code"] == float64(0) {
			t.Errorf("%v: envelope code should be non-zero: %v", args, result)
		}
		if msg, _ := result["message"].(string); !strings.Contains(strings.ToLower(msg), "not a git repository") {
			t.Errorf("%v: message = %q", args, msg)
		}
	}
}

// TestErrorMissingArgs checks that invalid arguments never reach git.
func TestErrorMissingArgs(t *testing.T) {
	repo := newTestRepo(t)

	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"commit"}, want: "subject"},
		{args: []string{"checkout"}, want: "branch"},
		{args: []string{"delete-branch"}, want: "branch"},
		{args: []string{"push"}, want: "remote"},
	}
	for _, tt := range tests {
		result := repo.envelope(1, tt.args...)
		if msg, _ := result["error"].(string); !strings.Contains(msg, tt.want) {
			t.Errorf("%v: error = %v", tt.args, result)
		}
	}
}

// TestInitIsIdempotent runs init twice at a root that does not exist yet.
func TestInitIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	fresh := filepath.Join(t.TempDir(), "fresh", "nested")

	first := repo.envelope(0, "--repo", fresh, "init")
	second := repo.envelope(0, "--repo", fresh, "init")
	if !strings.Contains(first["message"].(string), "Initialized") ||
		!strings.Contains(second["message"].(string), "Reinitialized") {
		t.Errorf("init messages = %v / %v", first, second)
	}
	if _, err := os.Stat(filepath.Join(fresh, ".git")); err != nil {
		t.Errorf("init should create the repository: %v", err)
	}
}
