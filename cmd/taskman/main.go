// Package main is the entry point for the taskman CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"taskman/internal/app"
	"taskman/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory may override config, e.g. TASKMAN_API_URL.
	_ = godotenv.Load()

	container, err := app.New(os.Getenv("TASKMAN_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
