package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/simplegit/internal/git"
	"github.com/gorewood/simplegit/internal/output"
)

var errNegativeLimit = output.NewUserError("n must not be negative")

// AckOutput is the output for tools whose only payload is git's message.
type AckOutput struct {
	Code    int    `json:"code"    jsonschema:"git exit status; 0 on success"`
	Message string `json:"message" jsonschema:"git output"`
}

func ackOutput(res git.Ack) AckOutput {
	return AckOutput{Code: res.Code, Message: res.Message}
}

// pathspec turns a tool's path list into an adapter Pathspec. An empty
// list means no path was given.
func pathspec(paths []string) git.Pathspec {
	if len(paths) == 0 {
		return git.Pathspec{}
	}
	return git.Paths(paths...)
}

// AddInput is the input for the add tool.
type AddInput struct {
	Paths     []string `json:"paths,omitempty"      jsonschema:"paths or globs to stage (default .)"`
	UpdateAll *bool    `json:"update_all,omitempty" jsonschema:"also stage removals and untracked files (default true)"`
}

func handleAdd(repo *git.Repo) mcp.ToolHandlerFor[AddInput, AckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, AckOutput, error) {
		updateAll := input.UpdateAll == nil || *input.UpdateAll
		return nil, ackOutput(repo.Add(ctx, pathspec(input.Paths), updateAll)), nil
	}
}

// ResetInput is the input for the reset tool.
type ResetInput struct {
	Paths []string `json:"paths,omitempty" jsonschema:"paths to unstage; empty unstages everything"`
}

func handleReset(repo *git.Repo) mcp.ToolHandlerFor[ResetInput, AckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ResetInput) (*mcp.CallToolResult, AckOutput, error) {
		return nil, ackOutput(repo.Reset(ctx, pathspec(input.Paths))), nil
	}
}

func handleDeleteUntrackedFiles(repo *git.Repo) mcp.ToolHandlerFor[PathInput, AckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PathInput) (*mcp.CallToolResult, AckOutput, error) {
		return nil, ackOutput(repo.DeleteUntrackedFiles(ctx, input.Path)), nil
	}
}

// BranchInput names a branch.
type BranchInput struct {
	Branch string `json:"branch" jsonschema:"branch name"`
}

func handleCheckoutBranch(repo *git.Repo) mcp.ToolHandlerFor[BranchInput, AckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BranchInput) (*mcp.CallToolResult, AckOutput, error) {
		res, err := repo.CheckoutBranch(ctx, input.Branch)
		if err != nil {
			return nil, AckOutput{}, err
		}
		return nil, ackOutput(res), nil
	}
}

// DeleteBranchInput is the input for the delete_branch tool.
type DeleteBranchInput struct {
	Branch string `json:"branch"          jsonschema:"branch to delete"`
	Force  bool   `json:"force,omitempty" jsonschema:"delete even if not merged"`
}

func handleDeleteBranch(repo *git.Repo) mcp.ToolHandlerFor[DeleteBranchInput, AckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteBranchInput) (*mcp.CallToolResult, AckOutput, error) {
		res, err := repo.DeleteBranch(ctx, input.Branch, input.Force)
		if err != nil {
			return nil, AckOutput{}, err
		}
		return nil, ackOutput(res), nil
	}
}

// CommitInput is the input for the commit tool.
type CommitInput struct {
	Subject string `json:"subject"        jsonschema:"commit subject line"`
	Body    string `json:"body,omitempty" jsonschema:"commit message body"`
}

func handleCommit(repo *git.Repo) mcp.ToolHandlerFor[CommitInput, AckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CommitInput) (*mcp.CallToolResult, AckOutput, error) {
		res, err := repo.Commit(ctx, input.Subject, input.Body)
		if err != nil {
			return nil, AckOutput{}, err
		}
		return nil, ackOutput(res), nil
	}
}

// PushInput is the input for the push tool.
type PushInput struct {
	Remote string `json:"remote"           jsonschema:"remote name, e.g. origin"`
	Branch string `json:"branch,omitempty" jsonschema:"branch to push (default: current branch)"`
}

func handlePush(repo *git.Repo) mcp.ToolHandlerFor[PushInput, AckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PushInput) (*mcp.CallToolResult, AckOutput, error) {
		res, err := repo.Push(ctx, input.Remote, input.Branch)
		if err != nil {
			return nil, AckOutput{}, err
		}
		return nil, ackOutput(res), nil
	}
}

// FetchInput is the input for the fetch tool.
type FetchInput struct {
	Remote string `json:"remote,omitempty" jsonschema:"remote name (default: git's choice)"`
	Prune  bool   `json:"prune,omitempty"  jsonschema:"remove remote-tracking refs that no longer exist"`
	All    bool   `json:"all,omitempty"    jsonschema:"fetch every configured remote"`
}

func handleFetch(repo *git.Repo) mcp.ToolHandlerFor[FetchInput, AckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FetchInput) (*mcp.CallToolResult, AckOutput, error) {
		res := repo.Fetch(ctx, git.FetchOptions{Remote: input.Remote, Prune: input.Prune, All: input.All})
		return nil, ackOutput(res), nil
	}
}

func handleInit(repo *git.Repo) mcp.ToolHandlerFor[NoInput, AckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, AckOutput, error) {
		return nil, ackOutput(repo.Init(ctx)), nil
	}
}

// RunInput is the input for the run tool.
type RunInput struct {
	Args []string `json:"args,omitempty" jsonschema:"git arguments, one token per element"`
}

// RunOutput is the output for the run tool.
type RunOutput struct {
	Code    int    `json:"code"              jsonschema:"git exit status; 0 on success"`
	Message string `json:"message,omitempty" jsonschema:"git diagnostic output on failure"`
	Results *string `json:"results,omitempty" jsonschema:"git output on success"`
}

func handleRun(repo *git.Repo) mcp.ToolHandlerFor[RunInput, RunOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RunInput) (*mcp.CallToolResult, RunOutput, error) {
		res := repo.Run(ctx, input.Args...)
		return nil, RunOutput{Code: res.Code, Message: res.Message, Results: payload(res)}, nil
	}
}
