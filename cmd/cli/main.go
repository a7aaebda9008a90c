package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/gokickstart/internal/cli"
)

// main is the entrypoint for the ksparse tool.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	os.Exit(run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, outW, errW io.Writer, args []string) int {
	err := cli.Execute(ctx, args, outW, errW)
	if err != nil {
		fmt.Fprintln(errW, err)
	}
	return cli.ExitCode(err)
}
