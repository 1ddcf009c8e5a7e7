// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cli provides the command-line interface for swaggen.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/swaggen/swaggen/internal/config"
	"github.com/swaggen/swaggen/internal/generator"
	"github.com/swaggen/swaggen/internal/util"
)

// Global flags
var (
	cfgFile     string
	source      string
	output      string
	specVersion string
	profiles    string
	services    string
	verbose     bool
	quiet       bool
)

// console receives informational and verbose messages. Commands that write
// a document to stdout point it at stderr.
var console io.Writer = os.Stdout

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "swaggen",
	Short: "Swagger 2.0 generator for directory-structured service definitions",
	Long: `swaggen assembles a directory of service definitions into Swagger 2.0
documents.

Every subdirectory of the source directory is a service holding an optional
info.yml, an actions/ directory with one document per action and a models/
directory with one schema per model. Three artifacts are written to the
output directory, each as a .yml/.json pair:

  swagger_docs    responses carry their schemas inline
  swagger_code    response schemas are relocated to named definitions
  specification   the assembled service definitions

Example:
  swaggen generate -V 1.4.0                # Generate from src/main/spec
  swaggen generate -s spec -t build -V 1.4.0
  swaggen generate -V 1.4.0 -p public      # Only services with the public profile
  swaggen check --ci                       # Fail when the output is stale
  swaggen watch -V 1.4.0                   # Regenerate on change`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: swaggen.yaml)")
	rootCmd.PersistentFlags().StringVarP(&source, "source", "s", "", "source directory (default: src/main/spec)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "t", "", "output directory (default: target/classes)")
	rootCmd.PersistentFlags().StringVarP(&specVersion, "version", "V", "", "version written to the info block")
	rootCmd.PersistentFlags().StringVarP(&profiles, "profiles", "p", "", "comma separated profiles a service must declare one of")
	rootCmd.PersistentFlags().StringVarP(&services, "services", "S", "", "comma separated service names to keep")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(printCmd)
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (*config.Config, error) {
	return loadConfigFrom(cfgFile)
}

// loadConfigFrom is loadConfig reading path instead of the --config flag.
func loadConfigFrom(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply command-line overrides
	if source != "" {
		cfg.Source = source
	}
	if output != "" {
		cfg.Output = output
	}
	if specVersion != "" {
		cfg.Version = specVersion
	}
	if profiles != "" {
		cfg.Profiles = []string{profiles}
	}
	if services != "" {
		cfg.Services = []string{services}
	}
	cfg.Profiles = util.SplitList(cfg.Profiles...)
	cfg.Services = util.SplitList(cfg.Services...)

	return cfg, nil
}

// newGenerator loads and validates the configuration and returns a
// generator reporting progress through printVerbose.
func newGenerator() (*config.Config, *generator.Generator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	opts := generator.OptionsFromConfig(cfg)
	opts.Logf = printVerbose
	return cfg, generator.New(opts), nil
}

// printInfo prints a message if not in quiet mode.
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(console, format+"\n", args...)
	}
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(console, format+"\n", args...)
	}
}

// printError prints an error message.
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
