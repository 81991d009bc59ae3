package output

import (
	"errors"
	"testing"
)

func TestExitError(t *testing.T) {
	sentinel := errors.New("invalid argument")

	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
		wantCause   error
	}{
		{
			name:        "user error",
			err:         NewUserError("repository root is required"),
			wantCode:    ExitUserError,
			wantMessage: "repository root is required",
		},
		{
			name:        "user error with cause",
			err:         NewUserErrorWithCause("invalid argument. Must provide a valid branch argument.", sentinel),
			wantCode:    ExitUserError,
			wantMessage: "invalid argument. Must provide a valid branch argument.",
			wantCause:   sentinel,
		},
		{
			name:        "system error",
			err:         NewSystemError("fatal: not a git repository"),
			wantCode:    ExitSystemError,
			wantMessage: "fatal: not a git repository",
		},
		{
			name:        "conflict error",
			err:         NewConflictError("index.lock exists"),
			wantCode:    ExitConflict,
			wantMessage: "index.lock exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
			if tt.wantCause != nil && !errors.Is(tt.err, tt.wantCause) {
				t.Errorf("errors.Is(%v, cause) = false, want true", tt.err)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "user", err: NewUserError("bad"), want: ExitUserError},
		{name: "system", err: NewSystemError("git failed"), want: ExitSystemError},
		{name: "conflict", err: NewConflictError("dup"), want: ExitConflict},
		{name: "untyped defaults to user", err: errors.New("boom"), want: ExitUserError},
		{
			name: "wrapped system error",
			err:  errors.Join(errors.New("context"), NewSystemErrorWithCause("push failed", errors.New("exit 1"))),
			want: ExitSystemError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
