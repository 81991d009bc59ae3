package setup

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/gorewood/simplegit/internal/output"
)

// ServerName is the key simplegit occupies under "mcpServers".
const ServerName = "simplegit"

const serversKey = "mcpServers"

// ServerEntry is one stdio server definition as agent clients expect it.
type ServerEntry struct {
	Type    string   `json:"type"`
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// DefaultServerEntry launches "simplegit mcp", pinned to repo when it is
// not empty. Without a repo the server resolves its root from the client's
// working directory.
func DefaultServerEntry(repo string) ServerEntry {
	args := []string{"mcp"}
	if repo != "" {
		args = append(args, "--repo", repo)
	}
	return ServerEntry{Type: "stdio", Command: "simplegit", Args: args}
}

// readSettings loads a JSON settings file. A missing or empty file yields
// an empty object.
func readSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read "+path, err)
	}
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	settings := map[string]any{}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, output.NewUserErrorWithCause("invalid JSON in "+path, err)
	}
	return settings, nil
}

func writeSettings(path string, settings map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create settings directory", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return output.NewSystemErrorWithCause("failed to encode settings", err)
	}
	// #nosec G306 -- settings are user-readable config
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return output.NewSystemErrorWithCause("failed to write "+path, err)
	}
	return nil
}

// IsServerInstalled reports whether path registers the simplegit server.
// Unreadable or malformed files count as not installed.
func IsServerInstalled(path string) bool {
	settings, err := readSettings(path)
	if err != nil {
		return false
	}
	servers, _ := settings[serversKey].(map[string]any)
	_, ok := servers[ServerName]
	return ok
}

// InstallServer adds or replaces the simplegit entry in path.
func InstallServer(path string, entry ServerEntry) error {
	settings, err := readSettings(path)
	if err != nil {
		return err
	}

	servers, ok := settings[serversKey].(map[string]any)
	if !ok {
		servers = map[string]any{}
	}
	servers[ServerName] = entry
	settings[serversKey] = servers
	return writeSettings(path, settings)
}

// RemoveServer deletes the simplegit entry from path. The file is left
// alone when it does not exist or has no entry.
func RemoveServer(path string) error {
	if !IsServerInstalled(path) {
		return nil
	}
	settings, err := readSettings(path)
	if err != nil {
		return err
	}

	servers, _ := settings[serversKey].(map[string]any)
	delete(servers, ServerName)
	if len(servers) == 0 {
		delete(settings, serversKey)
	}
	return writeSettings(path, settings)
}
