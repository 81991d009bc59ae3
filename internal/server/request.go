package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorewood/simplegit/internal/git"
	"github.com/gorewood/simplegit/internal/output"
)

// maxBodyBytes caps POST bodies; real requests are a few hundred bytes.
const maxBodyBytes = 1 << 20

// flag is a boolean that also accepts the strings "True" and "False", which
// older front ends send.
type flag struct {
	value bool
	set   bool
}

var errFlagType = errors.New(`must be a boolean or one of "True", "False"`)

// UnmarshalJSON implements json.Unmarshaler.
func (f *flag) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = flag{}
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flag{value: b, set: true}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errFlagType
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return errFlagType
	}
	*f = flag{value: parsed, set: true}
	return nil
}

// or returns the flag's value, or def when the key was absent.
func (f flag) or(def bool) bool {
	if !f.set {
		return def
	}
	return f.value
}

type addRequest struct {
	Path      git.Pathspec `json:"path"`
	UpdateAll flag         `json:"update_all"`
}

type pathRequest struct {
	Path git.Pathspec `json:"path"`
}

type branchRequest struct {
	Branch string `json:"branch"`
	Force  flag   `json:"force"`
}

type commitRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type pushRequest struct {
	Remote string `json:"remote"`
	Branch string `json:"branch"`
}

type fetchRequest struct {
	Remote string `json:"remote"`
	Prune  flag   `json:"prune"`
	All    flag   `json:"all"`
}

// runRequest reuses Pathspec's string-or-list decoding: a string is one
// token, a list is one token per element.
type runRequest struct {
	Args git.Pathspec `json:"args"`
}

// decodeBody reads a JSON object into dst. An empty body leaves dst at its
// zero value.
func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return output.NewUserErrorWithCause("reading request body: "+err.Error(), err)
	}
	if len(body) > maxBodyBytes {
		return output.NewUserError("request body too large")
	}
	if strings.TrimSpace(string(body)) == "" {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return output.NewUserErrorWithCause(fmt.Sprintf("invalid JSON body: %v", err), err)
	}
	return nil
}

// queryPath returns ?path=, which the adapter defaults to ".".
func queryPath(r *http.Request) string {
	return r.URL.Query().Get("path")
}

// queryLimit parses ?n=. Absent means no limit.
func queryLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("n"))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, output.NewUserError(fmt.Sprintf("invalid n %q: must be a non-negative integer", raw))
	}
	return n, nil
}
