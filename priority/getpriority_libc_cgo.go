//go:build (darwin || openbsd) && cgo

package priority

/*
#include <sys/types.h>
#include <sys/resource.h>
*/
import "C"

import "syscall"

func (hostSyscaller) getpriority(which, who int) (int, errno) {
	// libc getpriority returns -1 both for failure and for nice -1. cgo zeroes
	// errno before the call and returns it afterwards, so a nil err means the
	// value is a real priority.
	prio, err := C.getpriority(C.int(which), C.id_t(who))
	if err != nil {
		if e, ok := err.(syscall.Errno); ok && e != 0 {
			return 0, e
		}
	}
	return int(prio), 0
}
