//go:build linux

package main

import (
	"strconv"

	"goprio/process"
	"goprio/table"
)

// psTable builds the listing. uid < 0 keeps every user; verbose adds the
// long state description next to the state letter.
func psTable(processes []process.ProcessInfo, uid int, verbose bool, niceFormat table.FormatFunc) *table.Table {
	cols := []table.ColumnSpec{
		{Header: "PID", AlignRight: true},
		{Header: "PPID", AlignRight: true},
		{Header: "PGID", AlignRight: true},
		{Header: "UID", AlignRight: true},
		{Header: "NI", AlignRight: true, MinWidth: 3, FormatFunc: niceFormat},
		{Header: "S"},
	}
	if verbose {
		cols = append(cols, table.ColumnSpec{Header: "STATE"})
	}
	cols = append(cols, table.ColumnSpec{Header: "NAME"})
	t := table.New(cols...)

	for _, p := range processes {
		if uid >= 0 && p.UID != uid {
			continue
		}
		owner := ""
		if p.UID >= 0 {
			owner = strconv.Itoa(p.UID)
		}
		row := []string{
			strconv.Itoa(int(p.PID)),
			strconv.Itoa(int(p.PPID)),
			strconv.Itoa(int(p.PGID)),
			owner,
			strconv.Itoa(p.Nice),
			string(p.State),
		}
		if verbose {
			row = append(row, p.State.Description())
		}
		row = append(row, p.Name)
		t.AddRow(row...)
	}
	return t
}
