package priority

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

type errno = syscall.Errno

const errnoInvalid = syscall.EINVAL

const (
	opGet = "getpriority"
	opSet = "setpriority"
)

// OsError is returned by every failed priority call. Err is the errno the
// operating system reported for that call.
type OsError struct {
	Op    string // "getpriority" or "setpriority"
	Which Which
	Who   int
	Err   syscall.Errno
}

func newOsError(op string, which Which, who int, e errno) *OsError {
	return &OsError{Op: op, Which: which, Who: who, Err: e}
}

func (e *OsError) Error() string {
	return fmt.Sprintf("%s %s %d: %s", e.Op, e.Which, e.Who, e.Err.Error())
}

// Unwrap exposes the errno so errors.Is works against syscall/unix errno
// values and os.ErrPermission.
func (e *OsError) Unwrap() error {
	return e.Err
}

// Is maps ESRCH to os.ErrNotExist. syscall.Errno only does that for ENOENT,
// but for a priority call ESRCH is the "no such process, group or user" case.
func (e *OsError) Is(target error) bool {
	return target == os.ErrNotExist && e.Err == syscall.ESRCH
}

// Code returns the raw numeric errno
func (e *OsError) Code() int {
	return int(e.Err)
}

// IsPermission reports whether err is a priority failure caused by missing
// privilege (EPERM or EACCES).
func IsPermission(err error) bool {
	var oe *OsError
	return errors.As(err, &oe) && errors.Is(oe.Err, os.ErrPermission)
}

// IsNotFound reports whether err is a priority failure because no process,
// group or user matched (ESRCH).
func IsNotFound(err error) bool {
	var oe *OsError
	return errors.As(err, &oe) && oe.Err == syscall.ESRCH
}
