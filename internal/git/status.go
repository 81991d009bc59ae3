package git

import "strings"

// Actions reported in StatusEntry.Action.
const (
	ActionModified  = "modified"
	ActionAdded     = "added"
	ActionDeleted   = "deleted"
	ActionCopied    = "copied"
	ActionRenamed   = "renamed"
	ActionUntracked = "untracked"
)

// renameSeparator splits the source and destination of a copy or rename.
const renameSeparator = " -> "

// StatusEntry is one line of porcelain status output. Copies and renames
// set From and To; every other recognized action sets File. Lines with an
// unrecognized status code keep only Status.
type StatusEntry struct {
	Status string `json:"status"`
	Action string `json:"action,omitempty"`
	File   string `json:"file,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
}

// Recognized reports whether the status code mapped to a known action.
func (e StatusEntry) Recognized() bool {
	return e.Action != ""
}

// parseStatus converts porcelain status output into entries, one per
// non-blank line, in order.
func parseStatus(out string) []StatusEntry {
	entries := make([]StatusEntry, 0)
	if out == "" {
		return entries
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, parseStatusLine(line))
	}
	return entries
}

// parseStatusLine maps a single trimmed, non-empty porcelain line.
func parseStatusLine(line string) StatusEntry {
	entry := StatusEntry{Status: line[:1]}

	switch line[0] {
	case 'M':
		entry.Action = ActionModified
		entry.File = afterPrefix(line, 2)
	case 'A':
		entry.Action = ActionAdded
		entry.File = afterPrefix(line, 2)
	case 'D':
		entry.Action = ActionDeleted
		entry.File = afterPrefix(line, 2)
	case 'C':
		entry.Action = ActionCopied
		entry.From, entry.To = splitRename(afterPrefix(line, 2))
	case 'R':
		entry.Action = ActionRenamed
		entry.From, entry.To = splitRename(afterPrefix(line, 2))
	case '?':
		entry.Action = ActionUntracked
		entry.File = afterPrefix(line, 3)
	}
	return entry
}

// afterPrefix drops a fixed-width status prefix and the separator spaces
// that follow it.
func afterPrefix(line string, width int) string {
	if len(line) <= width {
		return ""
	}
	return strings.TrimLeft(line[width:], " ")
}

func splitRename(paths string) (from, to string) {
	from, to, found := strings.Cut(paths, renameSeparator)
	if !found {
		return paths, ""
	}
	return from, to
}
