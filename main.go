// Package main is the entry point for the estel interpreter.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.creack.net/estel/config"
	"go.creack.net/estel/interp"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estel [file]",
		Short: "Run an estel script, or start the prompt when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	cmd.SetVersionTemplate("estel version {{.Version}}\n")

	cmd.Flags().StringP("eval", "e", "", "Run the given source instead of a file")
	cmd.Flags().String("config", "", "Config file (default $HOME/"+config.FileName+", env ESTEL_CONFIG)")
	cmd.Flags().String("color", "", "Color errors: auto, always or never (env ESTEL_COLOR)")
	cmd.Flags().BoolP("verbose", "v", false, "Debug logging")
	cmd.Flags().Bool("dump-tokens", false, "Print the tokens instead of running")
	cmd.Flags().Bool("dump-ast", false, "Print the syntax tree instead of running")
	cmd.MarkFlagsMutuallyExclusive("dump-tokens", "dump-ast")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Lexical and syntax errors are already rendered.
		if !errors.Is(err, interp.ErrLex) && !errors.Is(err, interp.ErrParse) {
			slog.Error("Fail.", "error", err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Path(configPath))
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("color"); v != "" {
		cfg.Color = v
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--color: %w", err)
		}
	}

	level, _ := cfg.Level() // Validated by Load.
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	it := interp.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
	if v, _ := cmd.Flags().GetBool("dump-tokens"); v {
		it.Mode = interp.ModeDumpTokens
	}
	if v, _ := cmd.Flags().GetBool("dump-ast"); v {
		it.Mode = interp.ModeDumpAST
	}

	eval, _ := cmd.Flags().GetString("eval")
	switch {
	case cmd.Flags().Changed("eval") && len(args) > 0:
		return errors.New("--eval and a file are mutually exclusive")
	case cmd.Flags().Changed("eval"):
		return it.Run("<eval>", eval)
	case len(args) == 1:
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		logger.Debug("Run file.", "path", args[0], "bytes", len(buf))
		return it.Run(args[0], string(buf))
	default:
		return it.RunPrompt(cmd.InOrStdin())
	}
}
