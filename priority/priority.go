// Package priority reads and writes process scheduling priority (the "nice"
// value) of a process, a process group, or all processes of a user.
//
// Every operation is exactly one call into the operating system. Values are
// passed through uninterpreted unless the Accessor was built WithRange.
package priority

import (
	"fmt"
	"strings"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// Which selects what kind of identifier a priority call targets
type Which int

const (
	Process Which = iota // a single process (pid)
	Group                // a process group (pgid)
	User                 // every process owned by a user (uid)
)

// Self is the identifier meaning "the caller's own process, group or user"
const Self = 0

// Conventional nice bounds; lower is a higher scheduling priority.
const (
	MinNice = -20
	MaxNice = 19
)

func (w Which) String() string {
	switch w {
	case Process:
		return "process"
	case Group:
		return "group"
	case User:
		return "user"
	}
	return fmt.Sprintf("Which(%d)", int(w))
}

// ParseWhich accepts the names returned by String plus the aliases pid,
// pgrp, pgid and uid.
func ParseWhich(s string) (Which, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "process", "pid":
		return Process, nil
	case "group", "pgrp", "pgid":
		return Group, nil
	case "user", "uid":
		return User, nil
	}
	return 0, fmt.Errorf("unknown priority target kind %q", s)
}

// osWhich maps w to the platform PRIO_* constant. ok is false only for values
// outside the three declared kinds.
func (w Which) osWhich() (which int, ok bool) {
	switch w {
	case Process:
		return prioProcess, true
	case Group:
		return prioGroup, true
	case User:
		return prioUser, true
	}
	return 0, false
}

// syscaller is the pair of OS primitives the Accessor funnels into.
//
// getpriority must report failure only through errno: the returned value is
// meaningless when errno is non-zero and is a valid nice value (negative
// ones included) when errno is zero.
type syscaller interface {
	setpriority(which, who, prio int) errno
	getpriority(which, who int) (prio int, e errno)
}

// Accessor performs priority calls. The zero value is not usable; build one
// with NewAccessor. An Accessor is immutable and safe for concurrent use.
type Accessor struct {
	sys syscaller
	rng *Range
	log *logger.Logger
}

// Option configures an Accessor
type Option func(*Accessor)

// WithRange makes SetPriority reject values outside r with EINVAL before
// the OS is asked.
func WithRange(r Range) Option {
	return func(a *Accessor) {
		a.rng = &r
	}
}

// NewAccessor creates an Accessor bound to the host operating system
func NewAccessor(opts ...Option) *Accessor {
	a := &Accessor{
		sys: hostSyscaller{},
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "priority")),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetPriority sets the nice value of the target identified by which and who
func (a *Accessor) SetPriority(which Which, who int, prio int) error {
	osw, ok := which.osWhich()
	if !ok {
		return newOsError(opSet, which, who, errnoInvalid)
	}
	if a.rng != nil && !a.rng.Contains(prio) {
		a.log.Debugln("rejecting", prio, "for", which, who, "outside", a.rng.String())
		return newOsError(opSet, which, who, errnoInvalid)
	}

	if e := a.sys.setpriority(osw, who, prio); e != 0 {
		a.log.Debugln("setpriority", which, who, prio, "failed:", e.Error())
		return newOsError(opSet, which, who, e)
	}

	a.log.Debugln("setpriority", which, who, "=", prio)
	return nil
}

// SetSelfPriority sets the nice value of the caller's own process, group or
// user. On Linux (Process, Self) addresses the calling OS thread.
func (a *Accessor) SetSelfPriority(which Which, prio int) error {
	return a.SetPriority(which, Self, prio)
}

// GetPriority returns the nice value of the target identified by which and
// who. For Group and User targets the OS reports the highest priority (lowest
// nice value) among the matching processes.
func (a *Accessor) GetPriority(which Which, who int) (int, error) {
	osw, ok := which.osWhich()
	if !ok {
		return 0, newOsError(opGet, which, who, errnoInvalid)
	}

	// The returned value can't tell an error from a legitimate -1, so only
	// errno decides. Primitives start from a cleared indicator.
	prio, e := a.sys.getpriority(osw, who)
	if e != 0 {
		a.log.Debugln("getpriority", which, who, "failed:", e.Error())
		return 0, newOsError(opGet, which, who, e)
	}

	a.log.Debugln("getpriority", which, who, "=", prio)
	return prio, nil
}

// GetSelfPriority returns the nice value of the caller's own process, group
// or user.
func (a *Accessor) GetSelfPriority(which Which) (int, error) {
	return a.GetPriority(which, Self)
}

// Default is the Accessor used by the package level functions. It performs
// no range validation.
var Default = NewAccessor()

// SetPriority calls Default.SetPriority
func SetPriority(which Which, who int, prio int) error {
	return Default.SetPriority(which, who, prio)
}

// SetSelfPriority calls Default.SetSelfPriority
func SetSelfPriority(which Which, prio int) error {
	return Default.SetSelfPriority(which, prio)
}

// GetPriority calls Default.GetPriority
func GetPriority(which Which, who int) (int, error) {
	return Default.GetPriority(which, who)
}

// GetSelfPriority calls Default.GetSelfPriority
func GetSelfPriority(which Which) (int, error) {
	return Default.GetSelfPriority(which)
}
