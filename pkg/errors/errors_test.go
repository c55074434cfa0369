// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/JaaJSoft/crosspath/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_path_error",
			code:    errors.ErrInvalidPath,
			message: "illegal character in path",
			wantStr: "[INVALID_PATH] illegal character in path",
		},
		{
			name:    "no_file_store_error",
			code:    errors.ErrNoFileStore,
			message: "no mount point found",
			wantStr: "[NO_FILE_STORE] no mount point found",
		},
		{
			name:    "root_mismatch_error",
			code:    errors.ErrRootMismatch,
			message: "roots differ",
			wantStr: "[ROOT_MISMATCH] roots differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("boom")
	err := errors.Wrap(inner, errors.ErrInvalidArgument, "bad url")

	if err.Wrapped != inner {
		t.Error("Wrap() should keep the wrapped error")
	}

	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	want := "[INVALID_ARGUMENT] bad url: boom"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrInvalidArgument, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrIndexOutOfRange, "index outside bounds").
		WithDetail("index", 7).
		WithDetail("nameCount", 3)

	if err.Details["index"] != 7 {
		t.Errorf("Details[index] = %v, want 7", err.Details["index"])
	}
	if err.Details["nameCount"] != 3 {
		t.Errorf("Details[nameCount] = %v, want 3", err.Details["nameCount"])
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrUnsupportedSyntax, "unknown syntax %q", "fancy")

	if !errors.IsErrorCode(err, errors.ErrUnsupportedSyntax) {
		t.Error("IsErrorCode should match the error's code")
	}

	if errors.IsErrorCode(err, errors.ErrInvalidPath) {
		t.Error("IsErrorCode should not match a different code")
	}

	wrapped := errors.Wrap(err, errors.ErrInternal, "outer")
	if errors.GetErrorCode(wrapped) != errors.ErrInternal {
		t.Errorf("GetErrorCode = %v, want %v", errors.GetErrorCode(wrapped), errors.ErrInternal)
	}

	if errors.GetErrorCode(stderrors.New("plain")) != errors.ErrUnknown {
		t.Error("GetErrorCode on a plain error should be ErrUnknown")
	}
}
