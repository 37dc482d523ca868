// Package main is the entry point for the epitrend CLI
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sartorproj/epitrend/internal/cli"
)

// Set at build time via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)
	cli.SetBuildInfo(commit, buildTime)
	code := cli.Execute(ctx)

	stop()
	os.Exit(code)
}
