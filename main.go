package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"recipfit/internal/args"
	"recipfit/internal/cli"
	"recipfit/internal/config"
	"recipfit/internal/logger"
	"recipfit/internal/tui"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := args.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		showHelp()
		return exitFailure
	}

	if opts.Help {
		showHelp()
		return exitSuccess
	}

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid options: %v\n", err)
		return exitFailure
	}

	switch opts.Mode {
	case args.ModeRun:
		logger.Init(cfg.Verbose)
		return cli.NewRunner(cfg, opts.Source, opts.Watch).Run()

	case args.ModeMeasure:
		logger.Init(cfg.Verbose)
		return cli.NewRunner(cfg, "", false).Measure(opts.Source)
	}

	closer, err := logger.InitWithFile(cfg.LogFile, cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}
	defer closer.Close()

	return runTUI(cfg, opts.Source)
}

func runTUI(cfg *config.Config, source string) int {
	model := tui.NewModel(cfg, source)
	defer closeQuietly(model)

	if cfg.Path != "" {
		logger.Info("configuration loaded", "path", cfg.Path)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	return exitSuccess
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Warn("failed to release resources", "error", err)
	}
}

func showHelp() {
	fmt.Println(args.HelpText())
}
