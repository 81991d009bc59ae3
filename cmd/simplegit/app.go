package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/simplegit/internal/config"
	"github.com/gorewood/simplegit/internal/git"
	"github.com/gorewood/simplegit/internal/output"
)

// flagString reads a flag from the command or its persistent ancestors.
func flagString(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// useColor resolves --color against the command's output writer.
func useColor(cmd *cobra.Command) bool {
	mode, err := output.ParseColorMode(flagString(cmd, "color"))
	if err != nil {
		return false
	}
	return mode.Enabled(output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter builds the Printer every command writes through. Human-mode
// errors and warnings go to stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// loadConfig resolves configuration for the working directory and applies
// --repo on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, output.NewSystemErrorWithCause("cannot determine working directory", err)
	}
	cfg, err := config.Resolve(cwd)
	if err != nil {
		return config.Config{}, err
	}
	if repo := strings.TrimSpace(flagString(cmd, "repo")); repo != "" {
		cfg.Root = repo
		cfg.Sources = append(cfg.Sources, "--repo")
	}
	return cfg, nil
}

// openRepo resolves configuration and binds the adapter to its root.
func openRepo(cmd *cobra.Command) (*git.Repo, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	repo, err := git.Open(cfg.Root, git.WithBinary(cfg.GitBinary))
	if err != nil {
		return nil, config.Config{}, err
	}
	return repo, cfg, nil
}

// reportError prints err as JSON in --json mode and returns it. Human mode
// leaves printing to the error handler that runs the root command.
func reportError(printer *output.Printer, err error) error {
	if printer.IsJSON() {
		printer.Error(err)
	}
	return err
}

// emit writes an envelope. JSON mode prints it verbatim; human mode calls
// render on success. A git failure becomes a system error in both modes so
// the process exits non-zero.
func emit[T any](printer *output.Printer, res git.Result[T], render func(T)) error {
	if printer.IsJSON() {
		if err := printer.WriteJSON(res); err != nil {
			return output.NewSystemErrorWithCause("writing output", err)
		}
	} else if res.OK() {
		render(res.Value)
	}

	if !res.OK() {
		return gitFailure(res.Code, res.Message)
	}
	return nil
}

// emitAck is emit for operations whose payload is git's own message.
func emitAck(printer *output.Printer, res git.Ack) error {
	return emit(printer, res, func(struct{}) { printer.Message(res.Message) })
}

// lockMarker appears in git's output when another process holds the index
// or a ref lock.
const lockMarker = ".lock"

// gitFailure converts a failure envelope into an exit error. The adapter
// guarantees message is never empty. A held lock is a conflict, anything
// else a system error.
func gitFailure(code int, message string) error {
	message = strings.TrimRight(message, "\n")
	if strings.Contains(message, lockMarker) && strings.Contains(message, "File exists") {
		conflict := output.NewConflictError(message)
		conflict.Cause = &gitExitStatus{code: code}
		return conflict
	}
	return &output.ExitError{
		Code:    output.ExitSystemError,
		Message: message,
		Cause:   &gitExitStatus{code: code},
	}
}

// gitExitStatus records the exit status behind a failure envelope.
type gitExitStatus struct {
	code int
}

func (e *gitExitStatus) Error() string {
	return "git exit status " + strconv.Itoa(e.code)
}
