//go:build unix && !linux && !((darwin || openbsd) && cgo)

package priority

import "golang.org/x/sys/unix"

// On FreeBSD, NetBSD, DragonFly and Solaris x/sys traps into the kernel
// directly and errors come back out of band, so the errno belongs to this
// call alone. On darwin and openbsd without cgo x/sys goes through libc
// trampolines that report errno only when the result is -1 and never clear
// it first: a stale thread errno can turn a nice of -1 into a spurious
// failure there. Build those with cgo to get getpriority_libc_cgo.go.
func (hostSyscaller) getpriority(which, who int) (int, errno) {
	prio, err := unix.Getpriority(which, who)
	if e := toErrno(err); e != 0 {
		return 0, e
	}
	return prio, 0
}
