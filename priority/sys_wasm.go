//go:build js || wasip1

package priority

import "syscall"

const (
	prioProcess = iota
	prioGroup
	prioUser
)

type hostSyscaller struct{}

func (hostSyscaller) setpriority(which, who, prio int) errno {
	return syscall.ENOSYS
}

func (hostSyscaller) getpriority(which, who int) (int, errno) {
	return 0, syscall.ENOSYS
}
