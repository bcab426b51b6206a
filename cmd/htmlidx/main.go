// Command htmlidx extracts, indexes, and serves keyword search over a
// tree of offline HTML documentation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ksysoev/htmlidx/pkg/cmd"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cmd.InitCommand(cmd.BuildInfo{Version: version, AppName: "htmlidx"})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err) //nolint:forbidigo // CLI error output is intentional
		os.Exit(1)
	}
}
