package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/simplegit/internal/server"
)

// newServeCmd creates the serve command for the HTTP host.
func newServeCmd() *cobra.Command {
	var (
		listen  string
		baseURL string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve git operations as JSON over HTTP",
		Long: `Serve the repository's git operations as JSON over HTTP.

Routes live under <base-url>simple_git/:
  GET  status, changed_files, current_changed_files, commit_history,
       current_branch, local_branches, untracked_files
  POST add, reset, delete_untracked_files, checkout_branch, delete_branch,
       commit, push, fetch, init, run

GET <base-url>healthz reports liveness. The server stops gracefully on
SIGINT or SIGTERM.

Examples:
  simplegit serve
  simplegit serve --listen :9000 --base-url /user/ada/ --request-timeout 30s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			repo, cfg, err := openRepo(cmd)
			if err != nil {
				return reportError(printer, err)
			}
			if cmd.Flags().Changed("listen") {
				cfg.Listen = listen
			}
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if cmd.Flags().Changed("request-timeout") {
				cfg.RequestTimeout = timeout
			}

			logger, err := cfg.NewLogger(cmd.ErrOrStderr(), "simplegit")
			if err != nil {
				return reportError(printer, err)
			}

			srv := server.New(repo,
				server.WithLogger(logger),
				server.WithBaseURL(cfg.BaseURL),
				server.WithRequestTimeout(cfg.RequestTimeout),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.ListenAndServe(ctx, cfg.Listen); err != nil {
				logger.Error("server stopped", "error", err)
				return reportError(printer, err)
			}
			logger.Info("server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "Address to listen on (default from config: 127.0.0.1:8765)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Path prefix for every route (default /)")
	cmd.Flags().DurationVar(&timeout, "request-timeout", 0, "Per-request limit including the git process (0 = none)")
	return cmd
}
