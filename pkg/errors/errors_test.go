package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeConfigRange, "test message: %s", "value")

	if err.Code != ErrCodeConfigRange {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConfigRange)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "CONFIG_RANGE: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeLogoDecode, cause, "failed to decode logo")

	if err.Code != ErrCodeLogoDecode {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeLogoDecode)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInsufficientCanvas, "test"),
			code:     ErrCodeInsufficientCanvas,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInsufficientCanvas, "test"),
			code:     ErrCodeConfigRange,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeEncode, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeEncode,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"structured error", New(ErrCodeInvalidColor, "bad color"), ErrCodeInvalidColor},
		{"plain error", errors.New("plain"), ""},
		{"wrapped structured", Wrap(ErrCodeInternal, errors.New("x"), "y"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	structured := New(ErrCodeConfigRange, "dotScale 1.5 outside [0.5,1.0]")
	if got := UserMessage(structured); got != "dotScale 1.5 outside [0.5,1.0]" {
		t.Errorf("UserMessage() = %v, want message without code prefix", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %v, want %v", got, "plain error")
	}
}
