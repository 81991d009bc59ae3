package main

import (
	"github.com/gorewood/simplegit/internal/git"
	"github.com/gorewood/simplegit/internal/output"
)

// shortHashLen matches git's default abbreviation.
const shortHashLen = 7

func renderStatus(printer *output.Printer, entries []git.StatusEntry) {
	if len(entries) == 0 {
		printer.Hint("nothing to commit, working tree clean")
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		path := entry.File
		if entry.From != "" {
			path = entry.From + " -> " + entry.To
		}
		action := entry.Action
		if !entry.Recognized() {
			action = "?"
		}
		rows = append(rows, []string{entry.Status, printer.Action(action), path})
	}
	printer.Table([]string{"ST", "ACTION", "PATH"}, rows)
}

func renderPaths(printer *output.Printer, paths []string, empty string) {
	if len(paths) == 0 {
		printer.Hint("%s", empty)
		return
	}
	for _, path := range paths {
		printer.Println(path)
	}
}

func renderHistory(printer *output.Printer, commits []git.Commit) {
	if len(commits) == 0 {
		printer.Hint("no commits")
		return
	}

	rows := make([][]string, 0, len(commits))
	for _, c := range commits {
		hash := c.Hash
		if len(hash) > shortHashLen {
			hash = hash[:shortHashLen]
		}
		rows = append(rows, []string{hash, c.RelativeDate, c.Author, c.Message})
	}
	printer.Table([]string{"COMMIT", "WHEN", "AUTHOR", "SUBJECT"}, rows)
	printer.Hint("%d commit(s)", len(commits))
}

func renderBranches(printer *output.Printer, branches []string, current string) {
	if len(branches) == 0 {
		printer.Hint("no branches yet")
		return
	}
	for _, branch := range branches {
		marker := "  "
		if branch == current {
			marker = "* "
		}
		printer.Println(marker + branch)
	}
}
