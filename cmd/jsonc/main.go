// Command jsonc strips comments from JSON-like files, checks them, converts
// them to plain JSON and seals them.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexflint/go-arg"
)

// Args defines the command-line arguments with subcommands
type Args struct {
	Strip   *StripCmd `arg:"subcommand:strip" help:"Write input with comments removed"`
	Check   *CheckCmd `arg:"subcommand:check" help:"Check that input is valid JSON once comments are removed"`
	Fmt     *FmtCmd   `arg:"subcommand:fmt" help:"Convert commented JSON to plain JSON, keeping numbers exact"`
	Seal    *SealCmd  `arg:"subcommand:seal" help:"Encrypt a commented JSON document"`
	Open    *OpenCmd  `arg:"subcommand:open" help:"Decrypt a sealed document"`
	Verbose bool      `arg:"-v,--verbose" help:"Enable debug logging"`
}

// Runner holds what the subcommands share.
type Runner struct {
	Args   Args
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// NewRunner creates a Runner wired to the process' standard streams.
func NewRunner(args Args) *Runner {
	level := slog.LevelInfo
	if args.Verbose {
		level = slog.LevelDebug
	}
	return &Runner{
		Args:   args,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// Run dispatches to the appropriate subcommand
func (r *Runner) Run() error {
	switch {
	case r.Args.Strip != nil:
		return r.runStrip(r.Args.Strip)
	case r.Args.Check != nil:
		return r.runCheck(r.Args.Check)
	case r.Args.Fmt != nil:
		return r.runFmt(r.Args.Fmt)
	case r.Args.Seal != nil:
		return r.runSeal(r.Args.Seal)
	case r.Args.Open != nil:
		return r.runOpen(r.Args.Open)
	default:
		return fmt.Errorf("no subcommand specified, use 'strip', 'check', 'fmt', 'seal' or 'open'")
	}
}

func main() {
	var args Args
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}

	runner := NewRunner(args)
	if err := runner.Run(); err != nil {
		runner.Logger.Error("jsonc failed", "err", err)
		os.Exit(1)
	}
}
