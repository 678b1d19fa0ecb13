package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/rigsplit/internal/app"
	"github.com/vk/rigsplit/internal/cli"
)

// main is the entrypoint for the rigsplit command.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW, errW io.Writer, args []string) (err error) {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Config mistakes surface as errors; anything that panics during
	// startup is a bug, reported as a plain error rather than a crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("a critical startup error occurred: %v", r)
		}
	}()

	rigsplitApp := app.NewApp(outW, errW, config)
	return rigsplitApp.Run(context.Background())
}
