package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hdl-tools/sv-lint/internal/autofix"
	"github.com/hdl-tools/sv-lint/internal/config"
	"github.com/hdl-tools/sv-lint/internal/issues"
	"github.com/hdl-tools/sv-lint/internal/lint"
	"github.com/hdl-tools/sv-lint/internal/report"
	"github.com/hdl-tools/sv-lint/internal/validator"
)

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return err
	}

	logFile, logger, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger.Info("starting lint run", "version", version)

	targets := args
	if len(targets) == 0 && len(flags.filelists) == 0 {
		targets = []string{"."}
	}
	files, err := cfg.CollectFiles(targets, flags.filelists, *cfg.Analysis.Recursive, logger)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("no SystemVerilog files found")
		fmt.Println("No SystemVerilog files found.")
		return nil
	}
	logger.Info("collected files", "count", len(files))

	if flags.fix {
		res := autofix.Apply(files, logger)
		fmt.Printf("Fixed whitespace in %d file(s).\n", len(res.Changed))
	}

	store, err := lint.NewRunner(cfg, logger).Run(cmd.Context(), files)
	if err != nil {
		return err
	}

	rendered, markdown, err := renderReport(cfg, store, files)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output.Report, rendered, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info("report written", "path", cfg.Output.Report, "issues", store.TotalIssues())

	if store.Fail() {
		if markdown {
			showReport(string(rendered))
		} else {
			os.Stdout.Write(rendered)
		}
	}
	printVerdict(store, files, cfg.Output.Report)

	if store.Fail() {
		logFile.Close()
		os.Exit(1)
	}
	return nil
}

func loadConfig(args []string) (*config.Config, error) {
	if flags.configPath != "" {
		cfg, err := config.LoadFile(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", flags.configPath, err)
		}
		return cfg, nil
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	cfg, err := config.Load(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v (using defaults)\n", err)
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}

func applyFlagOverrides(cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Report = flags.output
	}
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.maxLineLength > 0 {
		cfg.Lint.MaxLineLength = flags.maxLineLength
	}
	if rootCmd.Flags().Changed("recursive") {
		cfg.Analysis.Recursive = &flags.recursive
	}
}

func validateConfig(cfg *config.Config) error {
	v, err := validator.NewConfig()
	if err != nil {
		return err
	}
	if err := v.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// openLogger writes the run log to the configured log file, and also to
// stderr in interactive mode.
func openLogger(cfg *config.Config) (*os.File, *log.Logger, error) {
	logFile, err := os.OpenFile(cfg.Output.Log, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	var w io.Writer = logFile
	if flags.interactive {
		w = io.MultiWriter(logFile, os.Stderr)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "sv-lint",
	})
	return logFile, logger, nil
}

func renderReport(cfg *config.Config, store *issues.Store, files []string) ([]byte, bool, error) {
	switch cfg.Output.Format {
	case "json":
		data, err := report.RenderJSON(store, files)
		if err != nil {
			return nil, false, err
		}
		v, err := validator.NewReport()
		if err != nil {
			return nil, false, err
		}
		if err := v.ValidateJSON(data); err != nil {
			return nil, false, fmt.Errorf("generated report failed its schema: %w", err)
		}
		return data, false, nil
	case "", "markdown":
		return []byte(report.Render(store, files)), true, nil
	default:
		return nil, false, fmt.Errorf("unknown report format %q", cfg.Output.Format)
	}
}

// showReport renders the Markdown report to the terminal. Falls back to raw
// text when stdout is not a TTY or styling is disabled.
func showReport(markdown string) {
	if flags.plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(markdown)
		return
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

func printVerdict(store *issues.Store, files []string, reportPath string) {
	useColor := !flags.plain && isatty.IsTerminal(os.Stdout.Fd())
	if !store.Fail() {
		verdict := fmt.Sprintf("✅ All checks passed (%d files)", len(files))
		if useColor {
			color.Green(verdict)
		} else {
			fmt.Println(verdict)
		}
		return
	}

	verdict := fmt.Sprintf("❌ %d issue categories found across %d files. See %s",
		store.TotalIssues(), len(files), reportPath)
	if useColor {
		color.Red(verdict)
	} else {
		fmt.Println(verdict)
	}
}
