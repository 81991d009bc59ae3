package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/simplegit/internal/git"
	"github.com/gorewood/simplegit/internal/output"
	"github.com/gorewood/simplegit/internal/setup"
)

// integrationInfo describes one agent client and its registration status.
type integrationInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Installed   bool   `json:"installed"`
	Scope       string `json:"scope,omitempty"`
	Location    string `json:"location,omitempty"`
}

type setupFlags struct {
	list    bool
	project bool
	check   bool
	remove  bool
	dryRun  bool
}

func newSetupCmd() *cobra.Command {
	var flags setupFlags

	cmd := &cobra.Command{
		Use:   "setup [agent]",
		Short: "Register the MCP server with an agent client",
		Long: `Register "simplegit mcp" in an agent client's MCP settings.

Agents: ` + strings.Join(setup.Names(), ", ") + `

By default the user-global settings file is edited. Use --project to write
the settings file in the current directory instead. --repo pins the server
to one repository; without it the server uses the client's working directory.

Examples:
  simplegit setup --list                   # List agents and status
  simplegit setup claude --project         # Register for this project
  simplegit setup cursor --repo ~/src/app  # Register globally, pinned
  simplegit setup claude --check           # Check registration
  simplegit setup claude --remove          # Remove registration`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.list {
				return runSetupList(cmd)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSetup(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.list, "list", false, "List agent clients and their status")
	cmd.Flags().BoolVar(&flags.project, "project", false, "Use the project settings file")
	cmd.Flags().BoolVar(&flags.check, "check", false, "Check registration without changes")
	cmd.Flags().BoolVar(&flags.remove, "remove", false, "Remove the registration")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without doing it")
	return cmd
}

func runSetup(cmd *cobra.Command, name string, flags setupFlags) error {
	printer := newPrinter(cmd)

	env := setup.GetAgentEnv(name)
	if env == nil {
		return reportError(printer, output.NewUserError(
			"unknown agent "+name+" (available: "+strings.Join(setup.Names(), ", ")+")"))
	}

	path, scope, installed, err := env.Check(flags.project)
	if err != nil {
		return reportError(printer, err)
	}

	switch {
	case flags.check:
		return printer.Success(map[string]any{
			"agent":     env.Name(),
			"installed": installed,
			"scope":     scope,
			"location":  path,
		})
	case flags.remove:
		if flags.dryRun {
			return printer.Success(map[string]any{"dry_run": true, "action": "remove", "location": path})
		}
		if err := env.Remove(flags.project); err != nil {
			return reportError(printer, err)
		}
		if printer.IsJSON() {
			return printer.Success(map[string]any{"status": "removed", "agent": env.Name(), "location": path})
		}
		printer.Message("Removed simplegit from " + env.DisplayName() + " (" + scope + ")")
		printer.Hint("%s", path)
		return nil
	}

	entry, err := serverEntry(cmd)
	if err != nil {
		return reportError(printer, err)
	}
	if flags.dryRun {
		return printer.Success(map[string]any{
			"dry_run":  true,
			"action":   "install",
			"location": path,
			"command":  entry.Command + " " + strings.Join(entry.Args, " "),
		})
	}
	if _, err := env.Install(flags.project, entry); err != nil {
		return reportError(printer, err)
	}
	if printer.IsJSON() {
		return printer.Success(map[string]any{"status": "installed", "agent": env.Name(), "scope": scope, "location": path})
	}
	printer.Message("Registered simplegit with " + env.DisplayName() + " (" + scope + ")")
	printer.Hint("%s", path)
	return nil
}

// serverEntry builds the server definition, pinning --repo when given.
func serverEntry(cmd *cobra.Command) (setup.ServerEntry, error) {
	repo := strings.TrimSpace(flagString(cmd, "repo"))
	if repo == "" {
		return setup.DefaultServerEntry(""), nil
	}
	root, err := git.ResolveRoot(repo)
	if err != nil {
		return setup.ServerEntry{}, err
	}
	return setup.DefaultServerEntry(root), nil
}

func runSetupList(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	envs := setup.AllAgentEnvs()
	integrations := make([]integrationInfo, 0, len(envs))
	for _, env := range envs {
		info := integrationInfo{Name: env.Name(), Description: env.DisplayName() + " MCP settings"}
		if path, scope, installed := env.Detect(); installed {
			info.Installed = true
			info.Scope = scope
			info.Location = path
		}
		integrations = append(integrations, info)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"integrations": integrations})
	}

	printer.Section("Agent Clients")
	rows := make([][]string, 0, len(integrations))
	for _, integ := range integrations {
		status, scope := "not installed", "-"
		if integ.Installed {
			status, scope = "installed", integ.Scope
		}
		rows = append(rows, []string{integ.Name, integ.Description, status, scope})
	}
	printer.Table([]string{"NAME", "DESCRIPTION", "STATUS", "SCOPE"}, rows)
	return nil
}
