package process

// ProcessID represents a unique identifier for a process
type ProcessID int

// ProcessInfo contains basic information about a process
type ProcessInfo struct {
	PID     ProcessID    // Process ID
	PPID    ProcessID    // Parent Process ID
	PGID    ProcessID    // Process group ID
	UID     int          // Real user ID
	Name    string       // Process name from /proc/[pid]/comm
	Cmdline string       // Command line, arguments joined by spaces
	State   ProcessState // Process state (R, S, D, Z, etc.)
	Nice    int          // Nice value of the main thread
	Threads int          // Number of threads
}
