package git

import "strings"

// historyFormat prints each commit as four lines: hash, author, relative
// date and subject.
const historyFormat = "--pretty=format:%H%n%an%n%ar%n%s"

// historyStride is the number of output lines per commit.
const historyStride = 4

// Commit is one entry of a commit history.
type Commit struct {
	Hash         string `json:"hash"`
	Author       string `json:"author"`
	RelativeDate string `json:"relative_date"`
	Message      string `json:"message"`
}

// parseHistory groups log output into commits of four lines each. A trailing
// group with fewer than four lines is dropped.
func parseHistory(out string) []Commit {
	history := make([]Commit, 0)
	if out == "" {
		return history
	}

	lines := strings.Split(out, "\n")
	for idx := 0; idx+historyStride <= len(lines); idx += historyStride {
		history = append(history, Commit{
			Hash:         strings.TrimRight(lines[idx], "\r"),
			Author:       strings.TrimRight(lines[idx+1], "\r"),
			RelativeDate: strings.TrimRight(lines[idx+2], "\r"),
			Message:      strings.TrimRight(lines[idx+3], "\r"),
		})
	}
	return history
}

// parseLines splits newline-separated output, dropping empty tokens.
func parseLines(out string) []string {
	lines := make([]string, 0)
	if out == "" {
		return lines
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
