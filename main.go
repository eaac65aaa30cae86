package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// Version is the refdoc version (set via -ldflags).
var Version = "dev"

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
