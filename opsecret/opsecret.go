// Package opsecret loads secret values from the 1Password CLI.
package opsecret

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Command is the 1Password CLI executable.
var Command = "op"

// IsRef reports whether s looks like a 1Password secret reference.
func IsRef(s string) bool {
	return strings.HasPrefix(s, "op://")
}

// Get returns the secret string associated with the given reference.
func Get(ref string) (string, error) {
	cmd := exec.Command(Command, "read", "--no-newline", ref)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	b, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			return "", fmt.Errorf("%s read %s: %s", Command, ref, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("%s read %s: %w", Command, ref, err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
