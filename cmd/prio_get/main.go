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
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	which := cfg.Kind()
	if *kindFlag != "" {
		if which, err = priority.ParseWhich(*kindFlag); err != nil {
			fmt.Printf("Error: %v\n", err)
			flag.Usage()
			os.Exit(1)
		}
	}

	prio, err := cfg.Accessor().GetPriority(which, *whoFlag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(prio)
}
