// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swaggen/swaggen/internal/generator"
	"github.com/swaggen/swaggen/internal/swagger"
	"github.com/swaggen/swaggen/pkg/types"
)

var diffArtifact string

var diffCmd = &cobra.Command{
	Use:   "diff file1 [file2]",
	Short: "Compare two Swagger documents",
	Long: `Compare two Swagger documents and show the differences.

If only one file is provided, it will be compared against the document
generated from the current source tree (swagger_code unless --artifact docs).

Example:
  swaggen diff old.json new.json             # Compare two files
  swaggen diff -V 1.0.0 target/classes/swagger_code.yml
  swaggen diff -V 1.0.0 --artifact docs swagger_docs.json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffArtifact, "artifact", "code", "generated document to compare a single file against: docs, code")
}

func runDiff(cmd *cobra.Command, args []string) error {
	before, err := swagger.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var after *types.Swagger
	if len(args) == 2 {
		printVerbose("Comparing %s against %s", args[0], args[1])
		after, err = swagger.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[1], err)
		}
	} else {
		printVerbose("Comparing %s against generated %s", args[0], diffArtifact)
		after, err = generatedDocument(diffArtifact)
		if err != nil {
			return err
		}
	}

	result, err := swagger.NewDiffer().Diff(before, after)
	if err != nil {
		return fmt.Errorf("failed to compare documents: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), swagger.FormatDiff(result))
	return nil
}

// generatedDocument builds the source tree and returns the docs or code document.
func generatedDocument(artifact string) (*types.Swagger, error) {
	_, gen, err := newGenerator()
	if err != nil {
		return nil, err
	}
	result, err := gen.Build()
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	switch artifact {
	case "docs", generator.DocsName:
		return result.Docs, nil
	case "code", generator.CodeName:
		return result.Code, nil
	default:
		return nil, fmt.Errorf("unsupported artifact %q, must be one of: docs, code", artifact)
	}
}
