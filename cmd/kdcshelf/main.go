// Package main implements kdcshelf, a command-line trainer for the Korean
// Decimal Classification shelving order of library call numbers.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/phrazzld/kdc-shelver/internal/config"
	"github.com/phrazzld/kdc-shelver/internal/domain/shelving"
	"github.com/phrazzld/kdc-shelver/internal/platform/logger"
)

const version = "0.1.0"

// CLI defines the command-line interface for kdcshelf.
type CLI struct {
	// Global flags
	Config   string `name:"config" type:"path" help:"Config file path (default: ./kdcshelf.yaml when present)"`
	LogLevel string `name:"log-level" help:"Override the configured log level (debug, info, warn, error)"`

	Compare CompareCmd `cmd:"" help:"Compare two call numbers and explain their order"`
	Sort    SortCmd    `cmd:"" help:"Print call numbers in shelving order"`
	Quiz    QuizCmd    `cmd:"" help:"Put a shuffled set of call numbers in shelving order"`
	Rules   RulesCmd   `cmd:"" help:"Print the shelving rules with examples"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// runtime carries the dependencies every command runs with.
type runtime struct {
	in       io.Reader
	out      io.Writer
	cfg      *config.Config
	logger   *slog.Logger
	shelving shelving.Service
}

// newRuntime loads configuration, applies global flag overrides and sets up
// logging on errOut.
func newRuntime(cli *CLI, in io.Reader, out, errOut io.Writer) (*runtime, error) {
	cfg, err := config.LoadFile(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	log, err := logger.Setup(cfg.Log, errOut)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Debug("configuration loaded",
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"quiz_seed", cfg.Quiz.Seed,
		"custom_templates", len(cfg.Quiz.Templates))

	return &runtime{
		in:       in,
		out:      out,
		cfg:      cfg,
		logger:   log,
		shelving: shelving.NewService(log),
	}, nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(rt *runtime) error {
	_, err := fmt.Fprintf(rt.out, "kdcshelf %s\n", version)
	return err
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("kdcshelf"),
		kong.Description("KDC call-number shelving order: compare, sort and practise"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	rt, err := newRuntime(&cli, os.Stdin, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(rt)
	ctx.FatalIfErrorf(err)
}
