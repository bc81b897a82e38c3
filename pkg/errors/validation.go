package errors

import (
	"strings"
	"unicode"
)

// maxPayloadLength caps QR payload size well above what any standard
// symbol version can hold, so oversized inputs fail here with a clear
// message instead of deep inside the encoder.
const maxPayloadLength = 4096

// ValidatePayload validates the text to be encoded into a QR symbol.
//
// The validation rules are intentionally conservative:
//   - No empty payloads
//   - No null bytes
//   - Maximum length of 4096 bytes
//
// Capacity limits per error-correction level are enforced by the
// encoder itself; this is only a sanity gate at the boundary.
func ValidatePayload(payload string) error {
	if payload == "" {
		return New(ErrCodeInvalidInput, "payload cannot be empty")
	}

	if len(payload) > maxPayloadLength {
		return New(ErrCodeInvalidInput, "payload too long (max %d bytes)", maxPayloadLength)
	}

	if strings.ContainsRune(payload, '\x00') {
		return New(ErrCodeInvalidInput, "payload contains null bytes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateLogoPath validates a logo file path for safety.
// It prevents path traversal and rejects control characters.
func ValidateLogoPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "logo path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "logo path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "logo path contains invalid characters")
		}
	}

	return nil
}
