//go:build linux

package main

import (
	"flag"
	"fmt"
	"os"

	"goprio/config"
	"goprio/process"
	"goprio/process_manage_linux"
	"goprio/table"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath, "Path to the YAML config file")
	patternFlag := flag.String("pattern", "", "Only list processes whose name matches this glob")
	userFlag := flag.Int("user", -1, "Only list processes of this uid")
	verboseFlag := flag.Bool("v", false, "Show the long process state")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	pm := process_manage_linux.NewProcessManager()

	var processes []process.ProcessInfo
	if *patternFlag != "" {
		processes, err = pm.FindProcessByNamePattern(*patternFlag)
	} else {
		processes, err = pm.FindAllProcesses()
	}
	if err != nil {
		fmt.Printf("Error listing processes: %v\n", err)
		os.Exit(1)
	}

	var niceFormat table.FormatFunc
	if cfg.UseColor(os.Stdout) {
		niceFormat = table.NiceFormatter
	}

	t := psTable(processes, *userFlag, *verboseFlag, niceFormat)

	if err := t.Render(os.Stdout); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
