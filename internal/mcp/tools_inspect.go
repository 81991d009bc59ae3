package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/simplegit/internal/git"
)

// PathInput selects the part of the work tree to inspect.
type PathInput struct {
	Path string `json:"path,omitempty" jsonschema:"path relative to the repository root (default .)"`
}

// NoInput is the input for tools without parameters.
type NoInput struct{}

// payload returns the value of a successful result and nil otherwise, so a
// failure omits the field while an empty success still encodes as [].
func payload[T any](res git.Result[T]) *T {
	if !res.OK() {
		return nil
	}
	value := res.Value
	return &value
}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Code        int               `json:"code"                  jsonschema:"git exit status; 0 on success"`
	Message     string            `json:"message,omitempty"     jsonschema:"git diagnostic output on failure"`
	Differences *[]git.StatusEntry `json:"differences,omitempty" jsonschema:"one entry per changed path"`
}

func handleStatus(repo *git.Repo, logger *log.Logger) mcp.ToolHandlerFor[PathInput, StatusOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PathInput) (*mcp.CallToolResult, StatusOutput, error) {
		res := repo.Status(ctx, input.Path)
		for _, entry := range res.Value {
			if !entry.Recognized() {
				logger.Warn("unrecognized status code", "status", entry.Status, "tool", "status")
			}
		}
		return nil, StatusOutput{Code: res.Code, Message: res.Message, Differences: payload(res)}, nil
	}
}

// FilesOutput is the output for tools listing paths.
type FilesOutput struct {
	Code    int      `json:"code"              jsonschema:"git exit status; 0 on success"`
	Message string   `json:"message,omitempty" jsonschema:"git diagnostic output on failure"`
	Files   *[]string `json:"files,omitempty"   jsonschema:"paths relative to the repository root"`
}

func handleChangedFiles(repo *git.Repo) mcp.ToolHandlerFor[PathInput, FilesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PathInput) (*mcp.CallToolResult, FilesOutput, error) {
		return nil, filesOutput(repo.ChangedFiles(ctx, input.Path)), nil
	}
}

func handleUntrackedFiles(repo *git.Repo) mcp.ToolHandlerFor[PathInput, FilesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PathInput) (*mcp.CallToolResult, FilesOutput, error) {
		return nil, filesOutput(repo.UntrackedFiles(ctx, input.Path)), nil
	}
}

func filesOutput(res git.Result[[]string]) FilesOutput {
	return FilesOutput{Code: res.Code, Message: res.Message, Files: payload(res)}
}

// HistoryInput is the input for the commit_history tool.
type HistoryInput struct {
	Path string `json:"path,omitempty" jsonschema:"path relative to the repository root (default .)"`
	N    int    `json:"n,omitempty"    jsonschema:"maximum number of commits; 0 means no limit"`
}

// HistoryOutput is the output for the commit_history tool.
type HistoryOutput struct {
	Code    int          `json:"code"              jsonschema:"git exit status; 0 on success"`
	Message string       `json:"message,omitempty" jsonschema:"git diagnostic output on failure"`
	History *[]git.Commit `json:"history,omitempty" jsonschema:"commits, newest first"`
}

func handleCommitHistory(repo *git.Repo) mcp.ToolHandlerFor[HistoryInput, HistoryOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input HistoryInput) (*mcp.CallToolResult, HistoryOutput, error) {
		if input.N < 0 {
			return nil, HistoryOutput{}, errNegativeLimit
		}
		res := repo.CommitHistory(ctx, input.Path, input.N)
		return nil, HistoryOutput{Code: res.Code, Message: res.Message, History: payload(res)}, nil
	}
}

// BranchOutput is the output for the current_branch tool.
type BranchOutput struct {
	Code    int    `json:"code"              jsonschema:"git exit status; 0 on success"`
	Message string `json:"message,omitempty" jsonschema:"git diagnostic output on failure"`
	Branch  *string `json:"branch,omitempty"  jsonschema:"abbreviated name of HEAD"`
}

func handleCurrentBranch(repo *git.Repo) mcp.ToolHandlerFor[NoInput, BranchOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, BranchOutput, error) {
		res := repo.CurrentBranch(ctx)
		return nil, BranchOutput{Code: res.Code, Message: res.Message, Branch: payload(res)}, nil
	}
}

// BranchesOutput is the output for the local_branches tool.
type BranchesOutput struct {
	Code     int      `json:"code"               jsonschema:"git exit status; 0 on success"`
	Message  string   `json:"message,omitempty"  jsonschema:"git diagnostic output on failure"`
	Branches *[]string `json:"branches,omitempty" jsonschema:"local branch names"`
}

func handleLocalBranches(repo *git.Repo) mcp.ToolHandlerFor[NoInput, BranchesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, BranchesOutput, error) {
		res := repo.LocalBranches(ctx)
		return nil, BranchesOutput{Code: res.Code, Message: res.Message, Branches: payload(res)}, nil
	}
}
