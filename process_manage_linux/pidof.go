//go:build linux

package process_manage_linux

import (
	"fmt"
	"os"

	"goprio/process"
)

// OneByName returns the lowest PID whose comm or exe basename equals name,
// skipping the calling process.
func (pm *ProcessManager) OneByName(name string) (*process.ProcessInfo, error) {
	ps, err := pm.FindProcessByName(name)
	if err != nil {
		return nil, err
	}
	return lowestOther(ps, fmt.Sprintf("name %q", name))
}

// OneByPattern returns the lowest PID whose comm matches the glob pattern,
// skipping the calling process.
func (pm *ProcessManager) OneByPattern(pattern string) (*process.ProcessInfo, error) {
	ps, err := pm.FindProcessByNamePattern(pattern)
	if err != nil {
		return nil, err
	}
	return lowestOther(ps, fmt.Sprintf("pattern %q", pattern))
}

// lowestOther picks the lowest PID for determinism
func lowestOther(ps []process.ProcessInfo, what string) (*process.ProcessInfo, error) {
	self := process.ProcessID(os.Getpid())

	var best *process.ProcessInfo
	for i := range ps {
		if ps[i].PID == self {
			continue
		}
		if best == nil || ps[i].PID < best.PID {
			best = &ps[i]
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%s: %w", what, process.ErrProcessNotFound)
	}
	return best, nil
}
