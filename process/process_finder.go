package process

// ProcessFinder defines operations for discovering processes that can be
// targeted by a priority call
type ProcessFinder interface {
	// FindProcessByPID finds a process by its PID
	FindProcessByPID(pid ProcessID) (*ProcessInfo, error)

	// FindProcessByName finds processes whose comm or exe basename equals name
	FindProcessByName(name string) ([]ProcessInfo, error)

	// FindProcessByNamePattern finds processes whose comm matches a glob pattern
	FindProcessByNamePattern(pattern string) ([]ProcessInfo, error)

	// FindAllProcesses returns information about all running processes
	FindAllProcesses() ([]ProcessInfo, error)
}
