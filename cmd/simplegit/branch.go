package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/simplegit/internal/git"
)

// firstArg returns args[0] or "" so the adapter can reject the omission.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <branch>",
		Short: "Switch to a branch, creating it if needed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			res, err := repo.CheckoutBranch(cmd.Context(), firstArg(args))
			if err != nil {
				return reportError(printer, err)
			}
			return emitAck(printer, res)
		},
	}
}

func newDeleteBranchCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "delete-branch <branch>",
		Short: "Delete a local branch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			res, err := repo.DeleteBranch(cmd.Context(), firstArg(args), force)
			if err != nil {
				return reportError(printer, err)
			}
			return emitAck(printer, res)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete even if the branch is not merged")
	return cmd
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <remote> [branch]",
		Short: "Push a branch (default: current) to a remote",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			branch := ""
			if len(args) == 2 {
				branch = args[1]
			}
			res, err := repo.Push(cmd.Context(), firstArg(args), branch)
			if err != nil {
				return reportError(printer, err)
			}
			return emitAck(printer, res)
		},
	}
}

func newFetchCmd() *cobra.Command {
	var opts git.FetchOptions
	cmd := &cobra.Command{
		Use:   "fetch [remote]",
		Short: "Download objects and refs from a remote",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			opts.Remote = firstArg(args)
			return emitAck(printer, repo.Fetch(cmd.Context(), opts))
		},
	}
	cmd.Flags().BoolVarP(&opts.Prune, "prune", "p", false, "Remove remote-tracking refs that no longer exist")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Fetch all remotes")
	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or reinitialize a repository at the root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			return emitAck(printer, repo.Init(cmd.Context()))
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [-- git-args...]",
		Short: "Run git with arbitrary arguments",
		Long: `Run git with arbitrary arguments in the repository root.

Put git's own flags after "--" so simplegit does not parse them.
With no arguments, runs "git help".

Examples:
  simplegit run -- log --oneline -n 5
  simplegit run --json -- rev-parse HEAD`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			repo, _, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			res := repo.Run(cmd.Context(), args...)
			return emit(printer, res, func(out string) {
				if out != "" {
					printer.Println(out)
				}
			})
		},
	}
}
