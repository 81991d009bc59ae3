package setup

import (
	"path/filepath"
	"testing"
)

func TestRegistryHasClients(t *testing.T) {
	tests := []struct {
		name    string
		display string
	}{
		{"claude", "Claude Code"},
		{"cursor", "Cursor"},
	}
	for _, tt := range tests {
		env := GetAgentEnv(tt.name)
		if env == nil {
			t.Fatalf("%s agent env should be registered", tt.name)
		}
		if env.DisplayName() != tt.display {
			t.Errorf("DisplayName() = %q, want %q", env.DisplayName(), tt.display)
		}
	}
}

func TestGetAgentEnvUnknown(t *testing.T) {
	if GetAgentEnv("nonexistent") != nil {
		t.Error("GetAgentEnv(\"nonexistent\") should return nil")
	}
}

func TestAllAgentEnvsOrder(t *testing.T) {
	names := Names()
	if len(names) < 2 || names[0] != "claude" || names[1] != "cursor" {
		t.Errorf("Names() = %v, want claude then cursor first", names)
	}
}

func TestInstallDetectRemove(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(project)

	env := GetAgentEnv("claude")
	if _, _, installed := env.Detect(); installed {
		t.Fatal("Detect() should be false before install")
	}

	path, err := env.Install(false, DefaultServerEntry("/srv/repo"))
	if err != nil {
		t.Fatalf("Install(global) error: %v", err)
	}
	if path != filepath.Join(home, ".claude.json") {
		t.Errorf("global path = %q", path)
	}

	_, scope, installed := env.Detect()
	if !installed || scope != ScopeGlobal {
		t.Errorf("Detect() = %q, %v; want global, true", scope, installed)
	}

	projectPath, err := env.Install(true, DefaultServerEntry(""))
	if err != nil {
		t.Fatalf("Install(project) error: %v", err)
	}
	detected, scope, _ := env.Detect()
	if scope != ScopeProject || detected != projectPath {
		t.Errorf("Detect() should prefer project scope, got %q at %q", scope, detected)
	}

	if err := env.Remove(true); err != nil {
		t.Fatalf("Remove(project) error: %v", err)
	}
	if _, _, installed, _ := env.Check(true); installed {
		t.Error("project entry should be gone")
	}
	if _, _, installed, _ := env.Check(false); !installed {
		t.Error("global entry should survive project removal")
	}

	detectedEnvs := DetectedAgentEnvs()
	if len(detectedEnvs) != 1 || detectedEnvs[0].Name() != "claude" {
		t.Errorf("DetectedAgentEnvs() = %v", detectedEnvs)
	}
}

func TestCursorProjectPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)

	path, scope, installed, err := GetAgentEnv("cursor").Check(true)
	if err != nil {
		t.Fatal(err)
	}
	resolved, _ := filepath.EvalSymlinks(project)
	got, _ := filepath.EvalSymlinks(filepath.Dir(filepath.Dir(path)))
	if scope != ScopeProject || installed || got != resolved {
		t.Errorf("Check(project) = %q, %q, %v", path, scope, installed)
	}
	if filepath.Base(path) != "mcp.json" || filepath.Base(filepath.Dir(path)) != ".cursor" {
		t.Errorf("path = %q, want .cursor/mcp.json", path)
	}
}
