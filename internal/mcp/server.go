// Package mcp provides a Model Context Protocol server for simplegit.
// It exposes the git adapter's operations as MCP tools over stdio.
package mcp

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/simplegit/internal/git"
)

// NewServer creates an MCP server with every git tool registered against
// repo. Warnings go to logger; a nil logger discards them. stdout carries
// the protocol, so logger must not write there.
func NewServer(version string, repo *git.Repo, logger *log.Logger) *mcp.Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "simplegit",
		Version: version,
	}, nil)
	registerTools(server, repo, logger)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that only inspect.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for additive write tools.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// destructiveAnnotations marks tools that discard work or refs.
func destructiveAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
}

// remoteAnnotations marks tools that talk to a remote.
func remoteAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all simplegit tools to the server.
func registerTools(server *mcp.Server, repo *git.Repo, logger *log.Logger) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show working tree status under a path as a list of {status, action, file | from/to} entries.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(repo, logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "changed_files",
		Description: "List files under a path whose working tree content differs from the index.",
		Annotations: readOnlyAnnotations(),
	}, handleChangedFiles(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "untracked_files",
		Description: "List untracked files under a path, honoring .gitignore.",
		Annotations: readOnlyAnnotations(),
	}, handleUntrackedFiles(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "commit_history",
		Description: "Show commits touching a path, newest first, with hash, author, relative date and subject. n limits the count.",
		Annotations: readOnlyAnnotations(),
	}, handleCommitHistory(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "current_branch",
		Description: "Show the name of the checked out branch (HEAD when detached).",
		Annotations: readOnlyAnnotations(),
	}, handleCurrentBranch(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "local_branches",
		Description: "List local branch names.",
		Annotations: readOnlyAnnotations(),
	}, handleLocalBranches(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add",
		Description: "Stage paths (default \".\"). update_all (default true) also stages removals.",
		Annotations: writeAnnotations(),
	}, handleAdd(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reset",
		Description: "Unstage paths, or everything when no paths are given.",
		Annotations: destructiveAnnotations(),
	}, handleReset(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_untracked_files",
		Description: "Delete untracked files and directories under a path (git clean -df). Irreversible.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteUntrackedFiles(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "checkout_branch",
		Description: "Switch to a branch, creating it from HEAD when it does not exist.",
		Annotations: writeAnnotations(),
	}, handleCheckoutBranch(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_branch",
		Description: "Delete a local branch. force also deletes unmerged branches.",
		Annotations: destructiveAnnotations(),
	}, handleDeleteBranch(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "commit",
		Description: "Record staged changes with a subject line and optional body.",
		Annotations: writeAnnotations(),
	}, handleCommit(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "push",
		Description: "Push a branch (default: the current branch) to a remote.",
		Annotations: remoteAnnotations(),
	}, handlePush(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch",
		Description: "Fetch objects and refs from a remote, optionally pruning or fetching all remotes.",
		Annotations: remoteAnnotations(),
	}, handleFetch(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "init",
		Description: "Create an empty repository at the configured root, or reinitialize an existing one.",
		Annotations: &mcp.ToolAnnotations{IdempotentHint: true, DestructiveHint: boolPtr(false), OpenWorldHint: boolPtr(false)},
	}, handleInit(repo))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "run",
		Description: "Run git with arbitrary arguments and return its output. Defaults to \"git help\".",
		Annotations: &mcp.ToolAnnotations{OpenWorldHint: boolPtr(true)},
	}, handleRun(repo))
}
