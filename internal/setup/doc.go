// Package setup registers the simplegit MCP server with agent clients.
//
// Each client keeps an "mcpServers" object in a JSON settings file, either
// per project or per user. Setup adds, detects and removes the simplegit
// entry in that object and leaves every other key untouched. Command-layer
// adapters in cmd/simplegit handle flags and output and delegate the file
// work to this package.
//
//	env := setup.GetAgentEnv("claude")
//	path, err := env.Install(true, setup.DefaultServerEntry(""))
//	_, scope, installed, err := env.Check(true)
//	err = env.Remove(true)
package setup
