package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/simplegit/internal/output"
)

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "1.2.3") {
		t.Errorf("--version output should contain version: %q", got)
	}
	if !strings.Contains(got, "simplegit") {
		t.Errorf("--version output should contain 'simplegit': %q", got)
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := buf.String()
	for _, expected := range []string{
		"simplegit",
		"Usage:",
		"--json",
		"--repo",
		"Inspect Commands:",
		"Stage Commands:",
		"Branch Commands:",
		"Serve Commands:",
		"status",
		"serve",
	} {
		if !strings.Contains(got, expected) {
			t.Errorf("--help output should contain %q", expected)
		}
	}
}

func TestRootCommand_JSONWithoutSubcommand(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--json"})

	err := cmd.Execute()
	if output.GetExitCode(err) != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if !strings.Contains(result["error"].(string), "no command specified") {
		t.Errorf("error = %v", result["error"])
	}
}

func TestRootCommand_InvalidColor(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--color", "sometimes", "branch"})

	err := cmd.Execute()
	if output.GetExitCode(err) != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d (err = %v)", output.GetExitCode(err), output.ExitUserError, err)
	}
}

func TestBuildVersion(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { version, commit, date = origVersion, origCommit, origDate })

	version, commit, date = "0.3.0", "none", "unknown"
	if got := buildVersion(); got != "0.3.0" {
		t.Errorf("buildVersion() = %q", got)
	}

	commit, date = "0123456789abcdef", "2026-01-02"
	if got := buildVersion(); got != "0.3.0 (0123456, 2026-01-02)" {
		t.Errorf("buildVersion() = %q", got)
	}
}
