//go:build windows

package priority

import "golang.org/x/sys/windows"

// Windows has priority classes, not nice values. The constants only keep
// the kind mapping total; every call fails with ERROR_NOT_SUPPORTED.
const (
	prioProcess = iota
	prioGroup
	prioUser
)

type hostSyscaller struct{}

func (hostSyscaller) setpriority(which, who, prio int) errno {
	return windows.ERROR_NOT_SUPPORTED
}

func (hostSyscaller) getpriority(which, who int) (int, errno) {
	return 0, windows.ERROR_NOT_SUPPORTED
}
