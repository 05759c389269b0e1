//go:build !linux

package main

import (
	"errors"
	"fmt"

	"goprio/priority"
	"goprio/process"
)

func reniceByName(acc *priority.Accessor, name, pattern string, prio int) (*process.ProcessInfo, int, error) {
	return nil, 0, fmt.Errorf("process lookup by name: %w", errors.ErrUnsupported)
}
