//go:build unix

package priority

import (
	"errors"

	"golang.org/x/sys/unix"
)

const (
	prioProcess = unix.PRIO_PROCESS
	prioGroup   = unix.PRIO_PGRP
	prioUser    = unix.PRIO_USER
)

type hostSyscaller struct{}

func (hostSyscaller) setpriority(which, who, prio int) errno {
	return toErrno(unix.Setpriority(which, who, prio))
}

func toErrno(err error) errno {
	if err == nil {
		return 0
	}
	var e unix.Errno
	if errors.As(err, &e) {
		return e
	}
	return unix.EIO
}
