// Package main provides the entry point for the simplegit CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/simplegit/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the simplegit CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simplegit",
		Short: "Git status, history and branches as JSON",
		Long: `simplegit - run everyday git operations and get structured results.

simplegit shells out to the git executable in a configured repository root
and reformats its output into a uniform envelope:

  {"code": 0, "files": [...]}          parsed success
  {"code": 0, "message": "..."}        raw success
  {"code": 128, "message": "fatal: ..."} git failure

The same operations are served over HTTP (simplegit serve) for web front
ends and over MCP (simplegit mcp) for agents.

All commands support --json for the envelope verbatim.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := output.ParseColorMode(flagString(cmd, "color"))
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'simplegit --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output the result envelope as JSON")
	cmd.PersistentFlags().String("color", string(output.ColorAuto), "Colorize output: auto, always or never")
	cmd.PersistentFlags().StringP("repo", "C", "", "Repository root (overrides config and $SIMPLEGIT_ROOT)")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "inspect", Title: "Inspect Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "stage", Title: "Stage Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "branch", Title: "Branch Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "other", Title: "Other Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "serve", Title: "Serve Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newStatusCmd(), "inspect")
	addGroupedCommand(cmd, newChangedCmd(), "inspect")
	addGroupedCommand(cmd, newUntrackedCmd(), "inspect")
	addGroupedCommand(cmd, newHistoryCmd(), "inspect")
	addGroupedCommand(cmd, newBranchCmd(), "inspect")
	addGroupedCommand(cmd, newBranchesCmd(), "inspect")

	addGroupedCommand(cmd, newAddCmd(), "stage")
	addGroupedCommand(cmd, newResetCmd(), "stage")
	addGroupedCommand(cmd, newCleanCmd(), "stage")

	addGroupedCommand(cmd, newCheckoutCmd(), "branch")
	addGroupedCommand(cmd, newDeleteBranchCmd(), "branch")
	addGroupedCommand(cmd, newCommitCmd(), "branch")
	addGroupedCommand(cmd, newPushCmd(), "branch")
	addGroupedCommand(cmd, newFetchCmd(), "branch")
	addGroupedCommand(cmd, newInitCmd(), "branch")

	addGroupedCommand(cmd, newServeCmd(), "serve")
	addGroupedCommand(cmd, newMCPCmd(), "serve")

	addGroupedCommand(cmd, newRunCmd(), "other")
	addGroupedCommand(cmd, newConfigCmd(), "admin")
	addGroupedCommand(cmd, newSetupCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
