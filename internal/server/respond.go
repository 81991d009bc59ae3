package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorewood/simplegit/internal/git"
	"github.com/gorewood/simplegit/internal/output"
)

var errSinglePath = output.NewUserError("path must be a single string")

// writeJSON encodes v with the given status. Encoding failures can only be
// reported to the log since the header is already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeEnvelope forwards an adapter envelope. Git failures are data, not
// transport errors, so the status is always 200.
func writeEnvelope(w http.ResponseWriter, envelope any) {
	writeJSON(w, http.StatusOK, envelope)
}

// writeError answers with {"error": msg, "code": N}.
func writeError(w http.ResponseWriter, status int, err error) {
	code := output.GetExitCode(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(output.ErrorJSON(err.Error(), code))
	_, _ = w.Write([]byte("\n"))
}

// writeAdapterError maps a validation error from the adapter to 400 and
// anything else to 500.
func writeAdapterError(w http.ResponseWriter, err error) {
	if errors.Is(err, git.ErrInvalidArgument) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeError(w, http.StatusInternalServerError, err)
}
