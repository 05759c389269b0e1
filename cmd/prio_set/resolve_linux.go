//go:build linux

package main

import (
	"goprio/priority"
	"goprio/process"
	"goprio/process_manage_linux"
)

// reniceByName resolves name or pattern to one process (lowest PID) and
// renices it through acc. It returns the target and its nice value as read
// back from the OS.
func reniceByName(acc *priority.Accessor, name, pattern string, prio int) (*process.ProcessInfo, int, error) {
	pm := process_manage_linux.NewProcessManagerAt(process_manage_linux.DefaultProcRoot, acc)

	var p *process.ProcessInfo
	var err error
	if name != "" {
		p, err = pm.OneByName(name)
	} else {
		p, err = pm.OneByPattern(pattern)
	}
	if err != nil {
		return nil, 0, err
	}

	if err := pm.Renice(p.PID, prio); err != nil {
		return p, 0, err
	}
	now, err := pm.Nice(p.PID)
	return p, now, err
}
