package setup

import (
	"os"
	"path/filepath"

	"github.com/gorewood/simplegit/internal/output"
)

// fileEnv is an agent client whose MCP settings live in one JSON file per
// scope. Paths are relative to the working directory (project) or the home
// directory (global).
type fileEnv struct {
	name        string
	displayName string
	projectFile string
	globalFile  string
}

func init() {
	RegisterAgentEnv(&fileEnv{
		name:        "claude",
		displayName: "Claude Code",
		projectFile: ".mcp.json",
		globalFile:  ".claude.json",
	})
	RegisterAgentEnv(&fileEnv{
		name:        "cursor",
		displayName: "Cursor",
		projectFile: filepath.Join(".cursor", "mcp.json"),
		globalFile:  filepath.Join(".cursor", "mcp.json"),
	})
}

func (e *fileEnv) Name() string        { return e.name }
func (e *fileEnv) DisplayName() string { return e.displayName }

// settingsPath resolves the settings file for a scope.
func (e *fileEnv) settingsPath(project bool) (string, string, error) {
	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", output.NewSystemErrorWithCause("failed to get working directory", err)
		}
		return filepath.Join(cwd, e.projectFile), ScopeProject, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", output.NewSystemErrorWithCause("failed to get home directory", err)
	}
	return filepath.Join(home, e.globalFile), ScopeGlobal, nil
}

func (e *fileEnv) Detect() (path, scope string, installed bool) {
	for _, project := range []bool{true, false} {
		settingsPath, s, err := e.settingsPath(project)
		if err != nil {
			continue
		}
		if IsServerInstalled(settingsPath) {
			return settingsPath, s, true
		}
	}
	return "", "", false
}

func (e *fileEnv) Install(project bool, entry ServerEntry) (string, error) {
	settingsPath, _, err := e.settingsPath(project)
	if err != nil {
		return "", err
	}
	if err := InstallServer(settingsPath, entry); err != nil {
		return "", err
	}
	return settingsPath, nil
}

func (e *fileEnv) Remove(project bool) error {
	settingsPath, _, err := e.settingsPath(project)
	if err != nil {
		return err
	}
	return RemoveServer(settingsPath)
}

func (e *fileEnv) Check(project bool) (path, scope string, installed bool, err error) {
	settingsPath, s, err := e.settingsPath(project)
	if err != nil {
		return "", "", false, err
	}
	return settingsPath, s, IsServerInstalled(settingsPath), nil
}
