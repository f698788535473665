// Package main is the entry point for the gridview dataset viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/gridstorm/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 2
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, bool) {
	var (
		scriptPath  = flag.String("script", "", "Lua script to run against the store after loading")
		watch       = flag.Bool("watch", false, "reload the dataset when the file changes")
		logLevel    = flag.String("log-level", "info", "log level (debug, info, warn, error)")
		logPath     = flag.String("log-file", "", "write logs to this file")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] dataset.toml\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("gridview %s (%s)\n", version, commit)
		return app.Options{}, false
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return app.Options{}, false
	}

	opts := app.Options{
		DatasetPath: flag.Arg(0),
		ScriptPath:  *scriptPath,
		Watch:       *watch,
		LogLevel:    app.ParseLogLevel(*logLevel),
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return app.Options{}, false
		}
		opts.LogOutput = f
	}

	return opts, true
}
