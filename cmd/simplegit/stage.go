package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/simplegit/internal/git"
)

// pathspecArgs maps positional arguments to a Pathspec: none means unset,
// otherwise one token per argument.
func pathspecArgs(args []string) git.Pathspec {
	if len(args) == 0 {
		return git.Pathspec{}
	}
	return git.Paths(args...)
}

func newAddCmd() *cobra.Command {
	var updateAll bool
	cmd := &cobra.Command{
		Use:   "add [path...]",
		Short: "Stage files",
		Long: `Stage paths (default: the repository root).

By default -A is passed so removals and untracked files are staged too.
Use --all=false to stage only the named paths' modifications.

Examples:
  simplegit add                   # git add -A .
  simplegit add a.txt b.txt       # git add -A a.txt b.txt
  simplegit add --all=false src/  # git add src/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			return emitAck(printer, repo.Add(cmd.Context(), pathspecArgs(args), updateAll))
		},
	}
	cmd.Flags().BoolVarP(&updateAll, "all", "A", true, "Also stage removals and untracked files")
	return cmd
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [path...]",
		Short: "Unstage files (everything when no path is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			return emitAck(printer, repo.Reset(cmd.Context(), pathspecArgs(args)))
		},
	}
}

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [path]",
		Short: "Delete untracked files and directories",
		Long: `Delete untracked files and directories under path (git clean -df).

This cannot be undone. Ignored files are kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			return emitAck(printer, repo.DeleteUntrackedFiles(cmd.Context(), optionalPath(args)))
		},
	}
}

func newCommitCmd() *cobra.Command {
	var subject, body string
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record staged changes",
		Long: `Record staged changes with a subject line and an optional body.

Examples:
  simplegit commit -m "Fix typo in README"
  simplegit commit -m "Add parser" -b "Handles renames and copies."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			res, err := repo.Commit(cmd.Context(), subject, body)
			if err != nil {
				return reportError(printer, err)
			}
			return emitAck(printer, res)
		},
	}
	cmd.Flags().StringVarP(&subject, "message", "m", "", "Commit subject line (required)")
	cmd.Flags().StringVarP(&body, "body", "b", "", "Commit message body")
	return cmd
}
