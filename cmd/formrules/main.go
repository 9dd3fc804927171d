package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/dmitrymomot/formrules/internal/commands"
)

// Populated at build time via -ldflags.
var version = "dev"

func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			return mv
		}
	}
	return version
}

func main() {
	app := commands.NewApp(buildVersion(), os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		// check already printed its failures
		if !errors.Is(err, commands.ErrCheckFailed) {
			fmt.Fprintln(os.Stderr, "formrules:", err)
		}
		os.Exit(1)
	}
}
