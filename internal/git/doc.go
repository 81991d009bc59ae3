// Package git is the command adapter behind every simplegit host.
//
// It shells out to the git executable with a fixed working directory,
// captures stdout and stderr merged into one stream, and turns the result
// into a uniform envelope. Operations that parse output compose a pure
// parser after the shared run-and-capture primitive.
//
// # Opening a Repository
//
// A Repo is bound to one root for its whole lifetime:
//
//	repo, err := git.Open("~/src/project")
//	if err != nil {
//	    return err // empty root or unresolvable home directory
//	}
//
// The root is expanded, made absolute and symlink-resolved. A root that
// does not exist yet is kept as a cleaned absolute path; Init creates the
// directory before running git init.
//
// # Envelopes
//
// Every operation returns a Result. On success Code is 0 and either
// Message (raw operations) or Value (parsed operations) is set. On
// failure Code is the exit status of git and Message holds its merged
// output:
//
//	res := repo.Status(ctx, ".")
//	if !res.OK() {
//	    fmt.Println(res.Code, res.Message)
//	}
//	for _, entry := range res.Value {
//	    fmt.Println(entry.Status, entry.Action, entry.File)
//	}
//
// Results marshal to the JSON shape served to the web front end:
//
//	{"code": 0, "differences": [...]}
//	{"code": 128, "message": "fatal: not a git repository ..."}
//
// # Invalid Arguments
//
// Operations with required arguments (CheckoutBranch, DeleteBranch,
// Commit, Push) validate them before spawning anything and return an
// error wrapping ErrInvalidArgument. A git failure is never a Go error.
//
// # Concurrency
//
// A Repo is immutable and safe for concurrent use. Concurrent mutating
// commands against the same root are not serialized here; git's own index
// lock is the only protection.
package git
