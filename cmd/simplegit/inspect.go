package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/simplegit/internal/git"
	"github.com/gorewood/simplegit/internal/output"
)

// optionalPath returns the first positional argument, or "" for the
// adapter default.
func optionalPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [path]",
		Short: "Show working tree status",
		Long: `Show working tree status under path (default: the repository root).

Each entry carries the one-letter porcelain status, the action it maps to
(modified, added, deleted, copied, renamed, untracked) and the affected
file, or from/to for copies and renames.

Examples:
  simplegit status          # Status of the whole tree
  simplegit status src/     # Only paths under src/
  simplegit status --json   # {"code":0,"differences":[...]}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			res := repo.Status(cmd.Context(), optionalPath(args))
			return emit(printer, res, func(entries []git.StatusEntry) {
				renderStatus(printer, entries)
			})
		},
	}
}

func newChangedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "changed [path]",
		Aliases: []string{"changed-files"},
		Short:   "List files that differ from the index",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			res := repo.ChangedFiles(cmd.Context(), optionalPath(args))
			return emit(printer, res, func(files []string) {
				renderPaths(printer, files, "no unstaged changes")
			})
		},
	}
}

func newUntrackedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "untracked [path]",
		Short: "List untracked files, honoring .gitignore",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			res := repo.UntrackedFiles(cmd.Context(), optionalPath(args))
			return emit(printer, res, func(files []string) {
				renderPaths(printer, files, "no untracked files")
			})
		},
	}
}

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "history [path]",
		Aliases: []string{"log"},
		Short:   "Show commits touching a path",
		Long: `Show commits touching path, newest first.

Examples:
  simplegit history              # Whole history
  simplegit history -n 10 main.go
  simplegit history --json       # {"code":0,"history":[{"hash":...}]}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			if limit < 0 {
				return reportError(printer, output.NewUserError("-n must not be negative"))
			}
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			res := repo.CommitHistory(cmd.Context(), optionalPath(args), limit)
			return emit(printer, res, func(commits []git.Commit) {
				renderHistory(printer, commits)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "number", "n", 0, "Limit the number of commits (0 = no limit)")
	return cmd
}

func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch",
		Short: "Show the current branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			res := repo.CurrentBranch(cmd.Context())
			return emit(printer, res, func(branch string) {
				printer.Println(branch)
			})
		},
	}
}

func newBranchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List local branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			res := repo.LocalBranches(cmd.Context())
			return emit(printer, res, func(branches []string) {
				current := ""
				if head := repo.CurrentBranch(cmd.Context()); head.OK() {
					current = head.Value
				}
				renderBranches(printer, branches, current)
			})
		},
	}
}
