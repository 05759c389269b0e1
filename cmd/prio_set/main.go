package main

import (
	"flag"
	"fmt"
	"os"

	"goprio/config"
	"goprio/priority"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath, "Path to the YAML config file")
	kindFlag := flag.String("kind", "", "Target kind: process, group or user (default from config)")
	whoFlag := flag.Int("who", priority.Self, "Process, group or user ID (0 = self)")
	nameFlag := flag.String("name", "", "Target the process with this name (lowest PID wins)")
	patternFlag := flag.String("pattern", "", "Target the process whose name matches this glob (lowest PID wins)")
	prioFlag := flag.Int("prio", 0, "Nice value to set")
	flag.Parse()

	prioSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "prio" {
			prioSet = true
		}
	})
	if !prioSet {
		fmt.Println("Error: -prio is required")
		flag.Usage()
		os.Exit(1)
	}
	if *nameFlag != "" && *patternFlag != "" {
		fmt.Println("Error: -name and -pattern are mutually exclusive")
		os.Exit(1)
	}
	byName := *nameFlag != "" || *patternFlag != ""

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	which, err := targetKind(cfg.Kind(), *kindFlag, byName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	acc := cfg.Accessor()

	if byName {
		p, now, err := reniceByName(acc, *nameFlag, *patternFlag, *prioFlag)
		if err != nil {
			exitSetError(err)
		}
		fmt.Printf("Set %s %d (%s) to %d (now %d)\n", which, p.PID, p.Name, *prioFlag, now)
		return
	}

	now, err := setAndReadBack(acc, which, *whoFlag, *prioFlag)
	if err != nil {
		exitSetError(err)
	}
	fmt.Printf("Set %s %d to %d (now %d)\n", which, *whoFlag, *prioFlag, now)
}

func exitSetError(err error) {
	fmt.Printf("Error: %v\n", err)
	if priority.IsPermission(err) {
		fmt.Println("Raising priority or renicing another user's processes needs CAP_SYS_NICE")
	}
	os.Exit(1)
}
