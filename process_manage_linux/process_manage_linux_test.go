//go:build linux

package process_manage_linux

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"

	"goprio/priority"
	"goprio/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProc(t *testing.T, root string, pid int, comm string, nice int, uid int) {
	t.Helper()
	dir := filepath.Join(root, strconv.Itoa(pid))
	require.NoError(t, os.MkdirAll(dir, 0o755))

	stat := fmt.Sprintf("%d (%s) S 1 %d %d 0 -1 4194560 100 0 0 0 3 1 0 0 20 %d 2 0 55 1000 200 18446744073709551615\n",
		pid, comm, pid, pid, nice)
	status := fmt.Sprintf("Name:\t%s\nUid:\t%d\t%d\t%d\t%d\n", comm, uid, uid, uid, uid)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "stat"), []byte(stat), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "status"), []byte(status), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cmdline"), []byte(comm+"\x00--flag\x00"), 0o644))
}

func fakeProc(t *testing.T) *ProcessManager {
	root := t.TempDir()
	writeProc(t, root, 300, "postgres", 5, 70)
	writeProc(t, root, 12, "nginx", 0, 0)
	writeProc(t, root, 40, "Web Content", -3, 1000)
	writeProc(t, root, 41, "a) b (c", 19, 1000)
	writeProc(t, root, 301, "postgres", 10, 70)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "self"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "uptime"), []byte("1 2\n"), 0o644))
	return NewProcessManagerAt(root, priority.Default)
}

func TestParseStatFile(t *testing.T) {
	tests := []struct {
		name string
		data string
		want process.ProcessInfo
	}{
		{
			name: "plain",
			data: "1234 (bash) R 1000 1234 1234 34816 1234 4194304 2 0 0 0 0 0 0 0 20 0 1 0 9 0 0",
			want: process.ProcessInfo{Name: "bash", State: process.ProcessRunning, PPID: 1000, PGID: 1234, Nice: 0, Threads: 1},
		},
		{
			name: "negative nice and spaces in comm",
			data: "77 (Web Content) S 1 77 77 0 -1 0 0 0 0 0 0 0 0 0 25 -5 31 0 9 0 0",
			want: process.ProcessInfo{Name: "Web Content", State: process.ProcessSleeping, PPID: 1, PGID: 77, Nice: -5, Threads: 31},
		},
		{
			name: "parentheses in comm",
			data: "9 (a) b (c) I 2 0 0 0 -1 0 0 0 0 0 0 0 0 0 39 19 1 0 9 0 0",
			want: process.ProcessInfo{Name: "a) b (c", State: process.ProcessIdle, PPID: 2, PGID: 0, Nice: 19, Threads: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got process.ProcessInfo
			require.NoError(t, parseStatFile(tt.data, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatFileInvalid(t *testing.T) {
	var info process.ProcessInfo
	assert.Error(t, parseStatFile("", &info))
	assert.Error(t, parseStatFile("12 (short) S 1 2", &info))
	assert.Error(t, parseStatFile("12 (bad) S 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 x 1", &info))
}

func TestParseStatusFile(t *testing.T) {
	info := process.ProcessInfo{UID: -1}
	parseStatusFile("Name:\tsshd\nUmask:\t0022\nUid:\t1000\t0\t0\t0\n", &info)
	assert.Equal(t, 1000, info.UID)
}

func TestFindAllProcesses(t *testing.T) {
	pm := fakeProc(t)

	all, err := pm.FindAllProcesses()
	require.NoError(t, err)
	require.Len(t, all, 5)

	var pids []process.ProcessID
	for _, p := range all {
		pids = append(pids, p.PID)
	}
	assert.Equal(t, []process.ProcessID{12, 40, 41, 300, 301}, pids)

	assert.Equal(t, "Web Content", all[1].Name)
	assert.Equal(t, -3, all[1].Nice)
	assert.Equal(t, 1000, all[1].UID)
	assert.Equal(t, "Web Content --flag", all[1].Cmdline)
}

func TestFindProcessByPID(t *testing.T) {
	pm := fakeProc(t)

	p, err := pm.FindProcessByPID(300)
	require.NoError(t, err)
	assert.Equal(t, "postgres", p.Name)
	assert.Equal(t, 5, p.Nice)
	assert.Equal(t, process.ProcessID(300), p.PGID)

	_, err = pm.FindProcessByPID(999)
	assert.ErrorIs(t, err, process.ErrProcessNotFound)
}

func TestFindProcessByName(t *testing.T) {
	pm := fakeProc(t)

	ps, err := pm.FindProcessByName("postgres")
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	ps, err = pm.FindProcessByName("Postgres")
	require.NoError(t, err)
	assert.Empty(t, ps)

	_, err = pm.FindProcessByName("")
	assert.ErrorIs(t, err, process.ErrEmptyName)
}

func TestFindProcessByNamePattern(t *testing.T) {
	pm := fakeProc(t)

	ps, err := pm.FindProcessByNamePattern("{nginx,post*}")
	require.NoError(t, err)
	assert.Len(t, ps, 3)

	ps, err = pm.FindProcessByNamePattern("Web*")
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, process.ProcessID(40), ps[0].PID)

	_, err = pm.FindProcessByNamePattern("")
	assert.ErrorIs(t, err, process.ErrEmptyName)
}

func TestOneByNameLowestPID(t *testing.T) {
	pm := fakeProc(t)

	p, err := pm.OneByName("postgres")
	require.NoError(t, err)
	assert.Equal(t, process.ProcessID(300), p.PID)

	p, err = pm.OneByPattern("post*")
	require.NoError(t, err)
	assert.Equal(t, process.ProcessID(300), p.PID)

	_, err = pm.OneByName("redis")
	assert.ErrorIs(t, err, process.ErrProcessNotFound)
}

func TestLowestOtherSkipsSelf(t *testing.T) {
	self := process.ProcessID(os.Getpid())
	ps := []process.ProcessInfo{{PID: self}, {PID: self + 1}}

	p, err := lowestOther(ps, "test")
	require.NoError(t, err)
	assert.Equal(t, self+1, p.PID)

	_, err = lowestOther(ps[:1], "test")
	assert.ErrorIs(t, err, process.ErrProcessNotFound)
}

func TestSelfMatchesAccessor(t *testing.T) {
	pm := NewProcessManager()
	pid := process.ProcessID(os.Getpid())

	info, err := pm.FindProcessByPID(pid)
	require.NoError(t, err)

	nice, err := pm.Nice(pid)
	require.NoError(t, err)
	assert.Equal(t, info.Nice, nice)
	assert.Equal(t, os.Getuid(), info.UID)
}

func TestReniceMissingProcess(t *testing.T) {
	pm := NewProcessManager()

	err := pm.Renice(1<<22+1, 10)
	require.Error(t, err)
	assert.True(t, priority.IsNotFound(err))
}

func TestReniceUsesGivenAccessor(t *testing.T) {
	acc := priority.NewAccessor(priority.WithRange(priority.Range{Min: 0, Max: 5}))
	pm := NewProcessManagerAt(DefaultProcRoot, acc)

	// out of range for acc, so rejected before the OS would report ESRCH
	err := pm.Renice(1<<22+1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.EINVAL)
	assert.False(t, priority.IsNotFound(err))
}
