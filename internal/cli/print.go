// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swaggen/swaggen/internal/generator"
	"github.com/swaggen/swaggen/internal/swagger"
)

var printFormat string

// printArtifacts maps the print argument to the artifact it renders.
var printArtifacts = map[string]string{
	"docs": generator.DocsName,
	"code": generator.CodeName,
	"spec": generator.SpecificationName,
}

var printCmd = &cobra.Command{
	Use:   "print [docs|code|spec]",
	Short: "Print a generated document to stdout",
	Long: `Print one generated document to standard output without writing files.

  docs  Swagger document with inline response schemas (default)
  code  Swagger document with relocated response models
  spec  the assembled service definitions

This is useful for piping the output to other tools or for quick inspection.

Example:
  swaggen print -V 1.0.0                   # Print swagger_docs as YAML
  swaggen print code -V 1.0.0 -f json      # Print swagger_code as JSON
  swaggen print spec -V 1.0.0 | yq .services`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"docs", "code", "spec"},
	RunE:      runPrint,
}

func init() {
	printCmd.Flags().StringVarP(&printFormat, "format", "f", swagger.FormatYAML, "output format: yaml, json")
}

func runPrint(cmd *cobra.Command, args []string) error {
	which := "docs"
	if len(args) > 0 {
		which = args[0]
	}
	artifact, ok := printArtifacts[which]
	if !ok {
		return fmt.Errorf("unknown document %q, must be one of: docs, code, spec", which)
	}

	// Keep stdout for the document.
	console = cmd.ErrOrStderr()
	defer func() { console = os.Stdout }()

	cfg, gen, err := newGenerator()
	if err != nil {
		return err
	}

	printVerbose("Print configuration:")
	printVerbose("  Document: %s", artifact)
	printVerbose("  Format: %s", printFormat)

	result, err := gen.Build()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	doc, err := result.Artifact(artifact)
	if err != nil {
		return err
	}

	writer := swagger.NewWriter()
	writer.Indent = cfg.JSON.Indent
	return writer.Write(doc, cmd.OutOrStdout(), printFormat)
}
