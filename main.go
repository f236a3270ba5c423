// Package main is the entry point for the tkg CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/eykd/tokengen-go/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C).
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cmd.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
