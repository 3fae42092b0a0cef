// Command assertgen renders the must and gotestcmp entry points from
// codegen.yaml. It runs from the go:generate lines in those packages.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/jacoelho/restassert/internal/exit"
	"github.com/jacoelho/restassert/internal/generator"
)

type CLI struct {
	Table   string `help:"Path to the assertions table." default:"codegen.yaml" type:"path"`
	Target  string `help:"Package to render (${enum})." enum:"must,gotestcmp" required:""`
	Out     string `help:"Directory the files are written to." default:"." type:"path"`
	Check   bool   `help:"Report stale files instead of writing them."`
	Report  string `help:"Print a summary (${enum})." enum:"none,text,json" default:"none"`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

func main() {
	exitCode := run(os.Args[1:], os.Stdout, os.Stderr, newLogger)
	os.Exit(exitCode)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func run(args []string, stdout, stderr io.Writer, loggerFor func(bool) (*zap.Logger, error)) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("assertgen"),
		kong.Description("Generate assertion entry points from a table"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return fail(exit.Errorf(stderr, "assertgen: %v", err))
	}
	if _, err := parser.Parse(args); err != nil {
		return fail(exit.Errorf(stderr, "assertgen: %v", err))
	}

	logger, err := loggerFor(cli.Verbose)
	if err != nil {
		return fail(exit.Errorf(stderr, "assertgen: create logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()

	summary, err := generate(cli, logger)
	if err != nil {
		logger.Error("generation failed", zap.String("target", cli.Target), zap.Error(err))
		return fail(exit.Errorf(stderr, "assertgen: %v", err))
	}

	if cli.Report != "none" {
		if err := summary.Write(stdout, generator.Format(cli.Report)); err != nil {
			return fail(exit.Errorf(stderr, "assertgen: write report: %v", err))
		}
	}

	if cli.Check && summary.HasStale() {
		return fail(exit.Stale(stderr, summary.Stale))
	}
	return exit.CodeOK
}

func generate(cli CLI, logger *zap.Logger) (generator.Summary, error) {
	logger.Debug("loading table", zap.String("path", cli.Table))

	f, err := os.Open(cli.Table)
	if err != nil {
		return generator.Summary{}, err
	}
	defer f.Close()

	table, err := generator.Load(f)
	if err != nil {
		return generator.Summary{}, err
	}

	files, err := generator.Render(table, cli.Target)
	if err != nil {
		return generator.Summary{}, err
	}
	logger.Debug("rendered target", zap.String("target", cli.Target), zap.Int("files", len(files)))

	summary, err := generator.Write(files, cli.Out, cli.Check)
	if err != nil {
		return generator.Summary{}, fmt.Errorf("write %s: %w", cli.Target, err)
	}

	for _, file := range summary.Files {
		logger.Info("generated file",
			zap.String("path", file.Path),
			zap.String("status", string(file.Status)),
			zap.Int("methods", file.Methods),
		)
	}

	return summary, nil
}

func fail(r *exit.Result) int {
	r.Print()
	return r.ExitCode
}
