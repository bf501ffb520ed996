package main

import (
	"fmt"
	"os"

	"github.com/de-tools/lift-atlas/pkg/runtime/terminal"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; LIFT_ATLAS_* variables may come from the shell instead.
	_ = godotenv.Load()

	cli := terminal.NewCLI(terminal.Options{
		Output: os.Stdout,
		Input:  os.Stdin,
		Logs:   os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
