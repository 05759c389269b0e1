package process

// ProcessState represents the state of a process
type ProcessState string

const (
	ProcessRunning    ProcessState = "R"
	ProcessSleeping   ProcessState = "S"
	ProcessWaiting    ProcessState = "D"
	ProcessZombie     ProcessState = "Z"
	ProcessStopped    ProcessState = "T"
	ProcessTracingStp ProcessState = "t"
	ProcessIdle       ProcessState = "I"
	ProcessDead       ProcessState = "X"
)

// Description returns the long form ps(1) uses for the state letter
func (s ProcessState) Description() string {
	switch s {
	case ProcessRunning:
		return "running"
	case ProcessSleeping:
		return "sleeping"
	case ProcessWaiting:
		return "disk sleep"
	case ProcessZombie:
		return "zombie"
	case ProcessStopped:
		return "stopped"
	case ProcessTracingStp:
		return "tracing stop"
	case ProcessIdle:
		return "idle"
	case ProcessDead:
		return "dead"
	}
	return "unknown"
}
