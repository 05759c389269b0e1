package main

import (
	"errors"
	"runtime"

	"goprio/priority"
)

var errNameNeedsProcess = errors.New("-name and -pattern only target processes")

// targetKind picks the kind for this run. A name or pattern lookup always
// targets a process unless -kind explicitly asks for something else.
func targetKind(configured priority.Which, kindFlag string, byName bool) (priority.Which, error) {
	if kindFlag == "" {
		if byName {
			return priority.Process, nil
		}
		return configured, nil
	}

	which, err := priority.ParseWhich(kindFlag)
	if err != nil {
		return 0, err
	}
	if byName && which != priority.Process {
		return 0, errNameNeedsProcess
	}
	return which, nil
}

// setAndReadBack sets the priority and reads back what the OS stored, which
// may be clamped. On Linux (Process, Self) is the calling thread, so the
// goroutine stays locked to it; the lock is never released and the reniced
// thread exits with the goroutine.
func setAndReadBack(acc *priority.Accessor, which priority.Which, who, prio int) (int, error) {
	runtime.LockOSThread()

	if err := acc.SetPriority(which, who, prio); err != nil {
		return 0, err
	}
	return acc.GetPriority(which, who)
}
