// Package process holds the process types shared by the priority tools
package process

import "errors"

var (
	// ErrProcessNotFound is returned when a lookup by pid, name or pattern
	// matched no running process.
	ErrProcessNotFound = errors.New("process not found")

	// ErrEmptyName is returned when a name or pattern lookup is given an empty string.
	ErrEmptyName = errors.New("empty process name")
)
