package main

import (
	"os"

	"github.com/batsched/batsched/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
