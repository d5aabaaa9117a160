package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPath, "bad path: %s", "/tmp/x")
	if err.Code != ErrCodeInvalidPath {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidPath, err.Code)
	}
	if err.Message != "bad path: /tmp/x" {
		t.Errorf("unexpected message: %s", err.Message)
	}
	want := "INVALID_PATH: bad path: /tmp/x"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch page %d", 3)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause with errors.Is")
	}
	if GetCode(err) != ErrCodeNetwork {
		t.Errorf("expected NETWORK_ERROR, got %s", GetCode(err))
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeEmptyCatalogue, "no presets downloaded")
	if !Is(err, ErrCodeEmptyCatalogue) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is should not match a different code")
	}

	// Codes survive wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("download: %w", err)
	if !Is(wrapped, ErrCodeEmptyCatalogue) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeBlocked, "access denied by bakkesplugins.com")
	if got := UserMessage(err); got != "access denied by bakkesplugins.com" {
		t.Errorf("unexpected user message: %s", got)
	}

	plain := stderrors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("unexpected user message for plain error: %s", got)
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid relative", "bakkesplugins_cars.cfg", false},
		{"valid absolute", "/home/user/out.cfg", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"null byte", "out\x00.cfg", true},
		{"control char", "out\x07.cfg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("expected INVALID_PATH code, got %s", GetCode(err))
			}
		})
	}
}
