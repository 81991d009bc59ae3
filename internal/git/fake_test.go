package git

import (
	"context"
	"os/exec"
	"slices"
	"strings"
	"sync"
	"testing"
)

// fakeReply is a canned response for one invocation.
type fakeReply struct {
	out  string
	code int
	err  error
}

// fakeRunner records every invocation and answers from a queue, falling back
// to a successful empty reply.
type fakeRunner struct {
	mu      sync.Mutex
	calls   [][]string
	dirs    []string
	replies []fakeReply
}

func (f *fakeRunner) Run(_ context.Context, dir string, args ...string) ([]byte, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, slices.Clone(args))
	f.dirs = append(f.dirs, dir)

	if len(f.replies) == 0 {
		return nil, 0, nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return []byte(reply.out), reply.code, reply.err
}

func newFakeRepo(t *testing.T, replies ...fakeReply) (*Repo, *fakeRunner) {
	t.Helper()
	fake := &fakeRunner{replies: replies}
	repo, err := Open(t.TempDir(), WithRunner(fake))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return repo, fake
}

func assertCalls(t *testing.T, fake *fakeRunner, want ...[]string) {
	t.Helper()
	if len(fake.calls) != len(want) {
		t.Fatalf("got %d invocations %v, want %d %v", len(fake.calls), fake.calls, len(want), want)
	}
	for i := range want {
		if !slices.Equal(fake.calls[i], want[i]) {
			t.Errorf("invocation %d = %q, want %q", i, fake.calls[i], want[i])
		}
	}
}

// requireGit skips tests that need a real git binary.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}
}

// initRepo creates a repository with a committer identity in a temp dir.
func initRepo(t *testing.T) *Repo {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	gitCmd(t, dir, "init", "--initial-branch=main")
	gitCmd(t, dir, "config", "user.email", "test@example.com")
	gitCmd(t, dir, "config", "user.name", "Test User")
	gitCmd(t, dir, "config", "commit.gpgsign", "false")

	repo, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return repo
}

func gitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.CommandContext(context.Background(), "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}
