//go:build linux

package process_manage_linux

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"goprio/priority"
	"goprio/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/gobwas/glob"
)

// DefaultProcRoot is where procfs is normally mounted
const DefaultProcRoot = "/proc"

// ProcessManager discovers processes through procfs and renices them one at a time
type ProcessManager struct {
	root string
	prio *priority.Accessor
	log  *logger.Logger
}

var _ process.ProcessFinder = (*ProcessManager)(nil)

// NewProcessManager creates a ProcessManager reading /proc and using the
// default priority accessor
func NewProcessManager() *ProcessManager {
	return NewProcessManagerAt(DefaultProcRoot, priority.Default)
}

// NewProcessManagerAt creates a ProcessManager reading a procfs mounted at root
func NewProcessManagerAt(root string, prio *priority.Accessor) *ProcessManager {
	return &ProcessManager{
		root: root,
		prio: prio,
		log:  logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "procfs")),
	}
}

// FindAllProcesses returns every readable process, sorted by PID
func (pm *ProcessManager) FindAllProcesses() ([]process.ProcessInfo, error) {
	return pm.filter(func(process.ProcessInfo) bool { return true })
}

// FindProcessByPID returns information about a specific process
func (pm *ProcessManager) FindProcessByPID(pid process.ProcessID) (*process.ProcessInfo, error) {
	info, err := pm.getProcessInfo(pid)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("pid %d: %w", pid, process.ErrProcessNotFound)
		}
		return nil, err
	}
	return &info, nil
}

// FindProcessByName finds processes whose comm or exe basename equals name.
// The match is case-sensitive, like pidof.
func (pm *ProcessManager) FindProcessByName(name string) ([]process.ProcessInfo, error) {
	if name == "" {
		return nil, process.ErrEmptyName
	}
	return pm.filter(func(p process.ProcessInfo) bool {
		return p.Name == name || pm.exeBase(p.PID) == name
	})
}

// FindProcessByNamePattern finds processes whose comm matches a glob pattern
// such as "postgres*" or "{nginx,httpd}".
func (pm *ProcessManager) FindProcessByNamePattern(pattern string) ([]process.ProcessInfo, error) {
	if pattern == "" {
		return nil, process.ErrEmptyName
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return pm.filter(func(p process.ProcessInfo) bool {
		return g.Match(p.Name)
	})
}

// Nice reads the current nice value of pid through the priority accessor
func (pm *ProcessManager) Nice(pid process.ProcessID) (int, error) {
	return pm.prio.GetPriority(priority.Process, int(pid))
}

// Renice sets the nice value of a single process
func (pm *ProcessManager) Renice(pid process.ProcessID, nice int) error {
	if err := pm.prio.SetPriority(priority.Process, int(pid), nice); err != nil {
		return err
	}
	pm.log.Infoln("Reniced process", pid, "to", nice)
	return nil
}

func (pm *ProcessManager) filter(keep func(process.ProcessInfo) bool) ([]process.ProcessInfo, error) {
	entries, err := os.ReadDir(pm.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", pm.root, err)
	}

	var processes []process.ProcessInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue // not a PID dir
		}

		info, err := pm.getProcessInfo(process.ProcessID(pid))
		if err != nil {
			// Process might have disappeared, skip it
			pm.log.Debugln("Skipping pid", pid, err)
			continue
		}

		if keep(info) {
			processes = append(processes, info)
		}
	}

	sort.Slice(processes, func(i, j int) bool {
		return processes[i].PID < processes[j].PID
	})
	return processes, nil
}

func (pm *ProcessManager) pidPath(pid process.ProcessID, name string) string {
	return filepath.Join(pm.root, strconv.Itoa(int(pid)), name)
}

// exeBase resolves /proc/<pid>/exe; empty for kernel threads, zombies or
// when permission is denied.
func (pm *ProcessManager) exeBase(pid process.ProcessID) string {
	exe, err := os.Readlink(pm.pidPath(pid, "exe"))
	if err != nil || exe == "" {
		return ""
	}
	return filepath.Base(strings.TrimSuffix(exe, " (deleted)"))
}

// getProcessInfo reads process information from /proc/[pid]/
func (pm *ProcessManager) getProcessInfo(pid process.ProcessID) (process.ProcessInfo, error) {
	info := process.ProcessInfo{PID: pid, UID: -1}

	statData, err := os.ReadFile(pm.pidPath(pid, "stat"))
	if err != nil {
		return info, err
	}
	if err := parseStatFile(string(statData), &info); err != nil {
		return info, fmt.Errorf("pid %d: %w", pid, err)
	}

	// Status file might not be readable, continue without it
	if statusData, err := os.ReadFile(pm.pidPath(pid, "status")); err == nil {
		parseStatusFile(string(statusData), &info)
	}

	if cmdlineData, err := os.ReadFile(pm.pidPath(pid, "cmdline")); err == nil {
		cmdline := strings.ReplaceAll(string(cmdlineData), "\x00", " ")
		info.Cmdline = strings.TrimSpace(cmdline)
	}

	return info, nil
}

// parseStatFile parses /proc/[pid]/stat. comm may contain spaces and
// parentheses, so it spans from the first '(' to the last ')'.
func parseStatFile(data string, info *process.ProcessInfo) error {
	open := strings.IndexByte(data, '(')
	closing := strings.LastIndexByte(data, ')')
	if open < 0 || closing < open {
		return fmt.Errorf("invalid stat file format")
	}
	info.Name = data[open+1 : closing]

	// fields after comm, starting at field 3 (state)
	rest := strings.Fields(data[closing+1:])
	if len(rest) < 18 {
		return fmt.Errorf("invalid stat file format: %d fields after comm", len(rest))
	}

	info.State = process.ProcessState(rest[0])

	if ppid, err := strconv.Atoi(rest[1]); err == nil {
		info.PPID = process.ProcessID(ppid)
	}
	if pgid, err := strconv.Atoi(rest[2]); err == nil {
		info.PGID = process.ProcessID(pgid)
	}

	nice, err := strconv.Atoi(rest[16])
	if err != nil {
		return fmt.Errorf("invalid nice field %q: %w", rest[16], err)
	}
	info.Nice = nice

	if threads, err := strconv.Atoi(rest[17]); err == nil {
		info.Threads = threads
	}

	return nil
}

// parseStatusFile fills the real uid from /proc/[pid]/status
func parseStatusFile(data string, info *process.ProcessInfo) {
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		if parts[0] == "Uid:" {
			if uid, err := strconv.Atoi(parts[1]); err == nil {
				info.UID = uid
			}
		}
	}
}
