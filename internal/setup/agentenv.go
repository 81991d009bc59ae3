package setup

import "slices"

// Scope names reported by Check and Detect.
const (
	ScopeProject = "project"
	ScopeGlobal  = "global"
)

// AgentEnv describes an agent client that can launch the simplegit MCP
// server. Each implementation knows where its settings live.
type AgentEnv interface {
	// Name returns the short identifier used in CLI commands (e.g., "claude").
	Name() string

	// DisplayName returns the human-readable name (e.g., "Claude Code").
	DisplayName() string

	// Detect checks whether the server is registered at either scope,
	// project first. Returns the settings path, scope and whether installed.
	Detect() (path, scope string, installed bool)

	// Install writes entry into the client's settings. If project is true,
	// the project-local file is used; otherwise the user-global one.
	Install(project bool, entry ServerEntry) (path string, err error)

	// Remove deletes the simplegit entry from the settings at that scope.
	Remove(project bool) error

	// Check returns the settings path and status for one scope.
	Check(project bool) (path, scope string, installed bool, err error)
}

// registry holds all known agent environments, keyed by name.
var registry = map[string]AgentEnv{}

// RegisterAgentEnv registers an agent environment implementation.
func RegisterAgentEnv(env AgentEnv) {
	registry[env.Name()] = env
}

// GetAgentEnv returns a registered agent environment by name, or nil if not found.
func GetAgentEnv(name string) AgentEnv {
	return registry[name]
}

// AllAgentEnvs returns all registered agent environments in a stable order.
func AllAgentEnvs() []AgentEnv {
	order := []string{"claude", "cursor"}
	var result []AgentEnv
	for _, name := range order {
		if env, ok := registry[name]; ok {
			result = append(result, env)
		}
	}

	var rest []string
	for name := range registry {
		if !slices.Contains(order, name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	for _, name := range rest {
		result = append(result, registry[name])
	}
	return result
}

// Names returns the identifiers of all registered environments.
func Names() []string {
	envs := AllAgentEnvs()
	names := make([]string, 0, len(envs))
	for _, env := range envs {
		names = append(names, env.Name())
	}
	return names
}

// DetectedAgentEnvs returns agent environments that have simplegit registered.
func DetectedAgentEnvs() []AgentEnv {
	var detected []AgentEnv
	for _, env := range AllAgentEnvs() {
		if _, _, installed := env.Detect(); installed {
			detected = append(detected, env)
		}
	}
	return detected
}
