package server

import (
	"net/http"

	"github.com/gorewood/simplegit/internal/git"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"root":   s.repo.Root(),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	res := s.repo.Status(r.Context(), queryPath(r))
	for _, entry := range res.Value {
		if !entry.Recognized() {
			s.logger.Warn("unrecognized status code", "status", entry.Status, "request_id", RequestIDFrom(r.Context()))
		}
	}
	writeEnvelope(w, res)
}

func (s *Server) handleChangedFiles(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, s.repo.ChangedFiles(r.Context(), queryPath(r)))
}

func (s *Server) handleUntrackedFiles(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, s.repo.UntrackedFiles(r.Context(), queryPath(r)))
}

func (s *Server) handleCommitHistory(w http.ResponseWriter, r *http.Request) {
	n, err := queryLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeEnvelope(w, s.repo.CommitHistory(r.Context(), queryPath(r), n))
}

func (s *Server) handleCurrentBranch(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, s.repo.CurrentBranch(r.Context()))
}

func (s *Server) handleLocalBranches(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, s.repo.LocalBranches(r.Context()))
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeEnvelope(w, s.repo.Add(r.Context(), req.Path, req.UpdateAll.or(true)))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeEnvelope(w, s.repo.Reset(r.Context(), req.Path))
}

func (s *Server) handleDeleteUntrackedFiles(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	args := req.Path.Args()
	if req.Path.IsList() && len(args) > 0 {
		writeError(w, http.StatusBadRequest, errSinglePath)
		return
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	writeEnvelope(w, s.repo.DeleteUntrackedFiles(r.Context(), path))
}

func (s *Server) handleCheckoutBranch(w http.ResponseWriter, r *http.Request) {
	var req branchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := s.repo.CheckoutBranch(r.Context(), req.Branch)
	if err != nil {
		writeAdapterError(w, err)
		return
	}
	writeEnvelope(w, res)
}

func (s *Server) handleDeleteBranch(w http.ResponseWriter, r *http.Request) {
	var req branchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := s.repo.DeleteBranch(r.Context(), req.Branch, req.Force.or(false))
	if err != nil {
		writeAdapterError(w, err)
		return
	}
	writeEnvelope(w, res)
}

func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := s.repo.Commit(r.Context(), req.Subject, req.Body)
	if err != nil {
		writeAdapterError(w, err)
		return
	}
	writeEnvelope(w, res)
}

func (s *Server) handlePush(w http.ResponseWriter, r *http.Request) {
	var req pushRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := s.repo.Push(r.Context(), req.Remote, req.Branch)
	if err != nil {
		writeAdapterError(w, err)
		return
	}
	writeEnvelope(w, res)
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	var req fetchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeEnvelope(w, s.repo.Fetch(r.Context(), git.FetchOptions{
		Remote: req.Remote,
		Prune:  req.Prune.or(false),
		All:    req.All.or(false),
	}))
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, s.repo.Init(r.Context()))
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeEnvelope(w, s.repo.Run(r.Context(), req.Args.Args()...))
}
