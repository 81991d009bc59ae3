package server

import "net/http"

func (s *Server) routes(mux *http.ServeMux) {
	get := func(name string, h http.HandlerFunc) {
		mux.HandleFunc(http.MethodGet+" "+s.baseURL+routePrefix+name, h)
	}
	post := func(name string, h http.HandlerFunc) {
		mux.HandleFunc(http.MethodPost+" "+s.baseURL+routePrefix+name, h)
	}

	mux.HandleFunc(http.MethodGet+" "+s.baseURL+"healthz", s.handleHealth)

	get("status", s.handleStatus)
	get("changed_files", s.handleChangedFiles)
	get("current_changed_files", s.handleChangedFiles)
	get("commit_history", s.handleCommitHistory)
	get("current_branch", s.handleCurrentBranch)
	get("local_branches", s.handleLocalBranches)
	get("untracked_files", s.handleUntrackedFiles)

	post("add", s.handleAdd)
	post("checkout_branch", s.handleCheckoutBranch)
	post("commit", s.handleCommit)
	post("delete_branch", s.handleDeleteBranch)
	post("delete_untracked_files", s.handleDeleteUntrackedFiles)
	post("fetch", s.handleFetch)
	post("init", s.handleInit)
	post("push", s.handlePush)
	post("reset", s.handleReset)
	post("run", s.handleRun)
}
