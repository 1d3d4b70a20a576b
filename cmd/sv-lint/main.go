// sv-lint checks SystemVerilog sources against the team coding standard and
// writes a remediation report.
//
// THE PIPELINE:
//  1. Config is loaded from sv_lint.json and validated against a CUE schema
//  2. Targets and filelists are resolved into a deduplicated .sv file set
//  3. Every enabled detector scans the files into a shared issue store
//  4. The store is rendered as a Markdown (or JSON) remediation report
//  5. Exit code 1 signals that issues were found
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hdl-tools/sv-lint/internal/config"
)

// version is overridden at build time via -ldflags.
var version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "sv-lint [targets...]",
	Short: "SystemVerilog RTL linter",
	Long: `sv-lint is a SystemVerilog code quality analyzer. It scans the given
files and directories, checks them against the coding standard, and writes a
prioritized remediation report.

Configuration is looked up in:
  1. ./sv_lint.json
  2. ./.sv_lint.json
  3. ~/.config/sv_lint/config.json

Run 'sv-lint init' to create a default configuration file.`,
	Args: cobra.ArbitraryArgs,

	SilenceUsage:  true,
	SilenceErrors: true,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sv_lint.json configuration file",
	RunE:  runInit,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sv-lint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sv-lint %s\n", version)
	},
}

var flags struct {
	filelists     []string
	configPath    string
	output        string
	format        string
	recursive     bool
	fix           bool
	interactive   bool
	plain         bool
	maxLineLength int
}

func main() {
	// Assigned here rather than in the rootCmd literal to avoid an
	// initialization cycle (runLint reaches rootCmd via applyFlagOverrides).
	rootCmd.RunE = runLint
	rootCmd.Version = version

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringArrayVarP(&flags.filelists, "filelist", "f", nil, "file containing a list of sources, one per line (repeatable)")
	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to configuration file")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "report output path (default from config)")
	rootCmd.Flags().StringVar(&flags.format, "format", "", "report format: markdown or json (default from config)")
	rootCmd.Flags().BoolVar(&flags.recursive, "recursive", true, "recurse into target directories")
	rootCmd.Flags().BoolVar(&flags.fix, "fix", false, "fix trailing whitespace and line endings in place before linting")
	rootCmd.Flags().BoolVarP(&flags.interactive, "interactive", "I", false, "log to the console in addition to the log file")
	rootCmd.Flags().BoolVar(&flags.plain, "plain", false, "disable styled terminal output")
	rootCmd.Flags().IntVar(&flags.maxLineLength, "max-line-length", 0, "override the configured line-length limit")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "sv_lint.json"

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file %s already exists. Overwrite? [y/N]: ", configPath)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("creating config: %w", err)
	}

	fmt.Printf("Created %s\n", configPath)
	fmt.Println("\nEdit this file to configure:")
	fmt.Println("  - Rule enablement and the line-length limit")
	fmt.Println("  - Ignore patterns")
	fmt.Println("  - Report and log destinations")
	return nil
}
