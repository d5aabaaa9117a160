package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates a user-supplied file path for safety.
// It rejects paths that are empty, contain control characters, or embed
// null bytes. Relative paths and parent references are allowed since the
// CLI runs with the user's own privileges; this guards against garbage
// input from config files, not against a hostile caller.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "output path contains a null byte")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains control characters")
		}
	}

	return nil
}
