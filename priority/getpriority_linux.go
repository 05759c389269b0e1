//go:build linux

package priority

import "golang.org/x/sys/unix"

// knice is the offset the kernel adds so getpriority never returns a value
// in the negative errno range: the raw result is 20 - nice, i.e. 1..40.
const knice = 20

func (hostSyscaller) getpriority(which, who int) (int, errno) {
	// errno comes back in its own register and is zero unless this call
	// failed, so it is clear before the call by construction.
	r0, _, e1 := unix.Syscall(unix.SYS_GETPRIORITY, uintptr(which), uintptr(who), 0)
	if e1 != 0 {
		return 0, e1
	}
	return knice - int(r0), 0
}
