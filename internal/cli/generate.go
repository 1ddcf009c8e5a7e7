// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swaggen/swaggen/internal/swagger"
)

var generateDryRun bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Swagger documents from service definitions",
	Long: `Generate Swagger 2.0 documents from the service definitions in the source
directory.

The services are loaded, filtered by profile and service name, rendered into
swagger_docs, relocated and rendered into swagger_code. The assembled
specification is written alongside both documents. Any malformed document
aborts the run before anything is written.

Example:
  swaggen generate -V 1.0.0                       # Use swaggen.yaml or defaults
  swaggen generate -s spec -t build -V 1.0.0      # Explicit directories
  swaggen generate -V 1.0.0 -p public,partner     # Filter by profiles
  swaggen generate -V 1.0.0 -S billing,users      # Filter by services
  swaggen generate -V 1.0.0 --dry-run             # Validate without writing`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "load and render without writing files")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, gen, err := newGenerator()
	if err != nil {
		return err
	}

	printVerbose("Configuration:")
	printVerbose("  Source: %s", cfg.Source)
	printVerbose("  Output: %s", cfg.Output)
	printVerbose("  Version: %s", cfg.Version)
	if len(cfg.Profiles) > 0 {
		printVerbose("  Profiles: %s", strings.Join(cfg.Profiles, ", "))
	}
	if len(cfg.Services) > 0 {
		printVerbose("  Services: %s", strings.Join(cfg.Services, ", "))
	}
	printVerbose("  Formats: %s", strings.Join(cfg.Formats, ", "))

	result, err := gen.Build()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	for _, path := range swagger.SortedPaths(result.Code.Paths) {
		printVerbose("  POST %s", path)
	}
	for _, name := range swagger.SortedDefinitions(result.Code.Definitions) {
		printVerbose("  definition %s", name)
	}

	if generateDryRun {
		printInfo("Dry run mode - no files will be written")
		printInfo("Would write %d path(s) and %d definition(s) to %s", len(result.Code.Paths), len(result.Code.Definitions), cfg.Output)
		return nil
	}

	written, err := gen.Write(result)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printInfo("Generated %d service(s) into %s (%d files)", len(result.Relocated.Services), cfg.Output, len(written))
	return nil
}
