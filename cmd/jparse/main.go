// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jparse checks whether its inputs are well-formed JSON.
//
// Usage:
//
//	jparse [flags] [file ...]
//
// With no files, jparse reads standard input. For each input it prints one
// line reporting success and the number of values parsed, or the error code
// and location of the first problem found. With --json, each report is a
// JSON object on its own line. The exit status is 1 if any input fails.
//
// Settings are read from a .jparse.yaml file in the working directory or one
// of its parents, or from the file named by --config. Flags override the
// settings in the file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jparse/internal/config"
)

// CLI defines the command-line interface.
type CLI struct {
	Files []string `arg:"" optional:"" help:"Input files to check. If none are given, reads from stdin."`

	Config            string `help:"Path to a YAML config file." short:"c" type:"path"`
	MaxDepth          int    `help:"Maximum nesting depth of arrays and objects." short:"d"`
	MaxElements       int    `help:"Maximum number of elements in each array or object."`
	MaxStringBytes    int    `help:"Maximum decoded length of each string, in bytes."`
	CombineSurrogates bool   `help:"Decode escaped UTF-16 surrogate pairs as a single code point."`
	JWCC              bool   `help:"Accept comments and trailing commas (JWCC)." name:"jwcc"`
	Workers           int    `help:"Number of files to check concurrently." short:"w"`
	JSON              bool   `help:"Write reports as JSON, one object per line." name:"json"`
	Verbose           bool   `help:"Enable debug logging." short:"v"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the program with the given arguments and returns its exit
// status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("jparse"),
		kong.Description("Check that inputs are well-formed JSON."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "jparse: %v\n", err)
		return 2
	}
	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "jparse: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(&cli)
	if err != nil {
		fmt.Fprintf(stderr, "jparse: %v\n", err)
		return 2
	}
	level := slog.LevelInfo
	if cfg.Output.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	c := &checker{cfg: cfg, logger: logger}
	var reports []*report
	if len(cli.Files) == 0 {
		reports = []*report{c.checkReader("<stdin>", stdin)}
	} else {
		reports, err = c.checkFiles(cli.Files)
		if err != nil {
			logger.Error("check failed", "error", err)
			return 2
		}
	}

	failed := 0
	for _, r := range reports {
		if err := r.write(stdout, cfg.Output.JSON); err != nil {
			logger.Error("write report", "error", err)
			return 2
		}
		if !r.ok() {
			failed++
		}
	}
	logger.Debug("done", "inputs", len(reports), "failed", failed)
	if failed > 0 {
		return 1
	}
	return 0
}

// loadConfig reads the config file, if any, and applies flag overrides.
// A flag left at its zero value does not override the file.
func loadConfig(cli *CLI) (*config.Config, error) {
	path := cli.Config
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.FindConfigFile(wd)
		}
	}
	cfg := config.NewConfig()
	if path != "" {
		var err error
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if cli.MaxDepth != 0 {
		cfg.Parser.MaxDepth = cli.MaxDepth
	}
	if cli.MaxElements != 0 {
		cfg.Parser.MaxElements = cli.MaxElements
	}
	if cli.MaxStringBytes != 0 {
		cfg.Parser.MaxStringBytes = cli.MaxStringBytes
	}
	if cli.Workers != 0 {
		cfg.Input.Workers = cli.Workers
	}
	cfg.Parser.CombineSurrogates = cfg.Parser.CombineSurrogates || cli.CombineSurrogates
	cfg.Input.JWCC = cfg.Input.JWCC || cli.JWCC
	cfg.Output.JSON = cfg.Output.JSON || cli.JSON
	cfg.Output.Verbose = cfg.Output.Verbose || cli.Verbose

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
