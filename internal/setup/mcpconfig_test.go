package setup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("invalid JSON written: %v\n%s", err, data)
	}
	return settings
}

func TestDefaultServerEntry(t *testing.T) {
	tests := []struct {
		repo string
		want []string
	}{
		{"", []string{"mcp"}},
		{"/srv/repo", []string{"mcp", "--repo", "/srv/repo"}},
	}
	for _, tt := range tests {
		got := DefaultServerEntry(tt.repo)
		if got.Type != "stdio" || got.Command != "simplegit" || !reflect.DeepEqual(got.Args, tt.want) {
			t.Errorf("DefaultServerEntry(%q) = %+v", tt.repo, got)
		}
	}
}

func TestInstallServerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mcp.json")

	if err := InstallServer(path, DefaultServerEntry("")); err != nil {
		t.Fatalf("InstallServer() error: %v", err)
	}

	settings := readJSON(t, path)
	servers := settings["mcpServers"].(map[string]any)
	entry := servers["simplegit"].(map[string]any)
	if entry["command"] != "simplegit" || entry["type"] != "stdio" {
		t.Errorf("entry = %v", entry)
	}
	if !IsServerInstalled(path) {
		t.Error("IsServerInstalled() should be true after install")
	}
}

func TestInstallServerPreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	existing := `{"theme":"dark","mcpServers":{"other":{"command":"other"}}}`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := InstallServer(path, DefaultServerEntry("")); err != nil {
		t.Fatal(err)
	}
	settings := readJSON(t, path)
	if settings["theme"] != "dark" {
		t.Errorf("theme lost: %v", settings)
	}
	servers := settings["mcpServers"].(map[string]any)
	if _, ok := servers["other"]; !ok {
		t.Errorf("other server lost: %v", servers)
	}

	if err := RemoveServer(path); err != nil {
		t.Fatal(err)
	}
	settings = readJSON(t, path)
	servers = settings["mcpServers"].(map[string]any)
	if _, ok := servers["simplegit"]; ok {
		t.Error("simplegit entry should be removed")
	}
	if _, ok := servers["other"]; !ok {
		t.Error("other server should survive removal")
	}
}

func TestRemoveServerDropsEmptyServers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := InstallServer(path, DefaultServerEntry("")); err != nil {
		t.Fatal(err)
	}
	if err := RemoveServer(path); err != nil {
		t.Fatal(err)
	}
	if _, ok := readJSON(t, path)["mcpServers"]; ok {
		t.Error("empty mcpServers should be dropped")
	}
}

func TestRemoveServerMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	if err := RemoveServer(path); err != nil {
		t.Fatalf("RemoveServer() on missing file error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("RemoveServer() should not create the file")
	}
}

func TestInstallServerInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InstallServer(path, DefaultServerEntry("")); err == nil {
		t.Fatal("InstallServer() should fail on malformed settings")
	}
	if IsServerInstalled(path) {
		t.Error("malformed file should count as not installed")
	}
}
