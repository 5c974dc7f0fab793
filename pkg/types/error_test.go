package types

import (
	"errors"
	"os"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      &Error{Kind: ErrKindMissingRegion, Msg: "no FLASH in layout_a.ld"},
			expected: "no FLASH in layout_a.ld",
		},
		{
			name:     "message with cause",
			err:      &Error{Kind: ErrKindFileAccess, Msg: "read layout", Err: os.ErrNotExist},
			expected: "read layout: file does not exist",
		},
		{
			name:     "nil receiver",
			err:      nil,
			expected: "<nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "same kind matches sentinel",
			err:      &Error{Kind: ErrKindFileAccess, Msg: "read layout a.ld", Err: os.ErrNotExist},
			target:   ErrFileAccess,
			expected: true,
		},
		{
			name:     "different kind does not match",
			err:      &Error{Kind: ErrKindMissingRegion, Msg: "no rom"},
			target:   ErrFileAccess,
			expected: false,
		},
		{
			name:     "cause still reachable through the wrapper",
			err:      &Error{Kind: ErrKindFileAccess, Msg: "read layout a.ld", Err: os.ErrNotExist},
			target:   os.ErrNotExist,
			expected: true,
		},
		{
			name:     "plain error is not a typed error",
			err:      errors.New("plain"),
			target:   ErrMalformedDelta,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestError_As(t *testing.T) {
	wrapped := &Error{Kind: ErrKindEncoding, Msg: "decode layout", Err: errors.New("bad surrogate")}

	var typed *Error
	if !errors.As(wrapped, &typed) {
		t.Fatal("Expected errors.As to extract *Error")
	}
	if typed.Kind != ErrKindEncoding {
		t.Errorf("Expected kind %d, got %d", ErrKindEncoding, typed.Kind)
	}
	if typed.Unwrap() == nil {
		t.Error("Expected a non-nil cause")
	}
}
