// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/swaggen/swaggen/internal/generator"
	"github.com/swaggen/swaggen/internal/swagger"
	"github.com/swaggen/swaggen/pkg/types"
)

// Exit codes for check command
const (
	ExitCodeMatch      = 0 // Output matches the source tree
	ExitCodeDifference = 1 // Output differs from the source tree
	ExitCodeCheckError = 2 // Error during analysis
)

// ExitError asks main to exit with Code without printing anything further.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var (
	checkStrict bool
	checkIgnore []string
	checkCI     bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if the generated documents are up to date",
	Long: `Check regenerates the Swagger documents in memory and compares them with
swagger_docs and swagger_code in the output directory.

It's useful for CI pipelines to ensure the committed documents are always in
sync with the service definitions.

Exit codes (with --ci):
  0  Documents match the source tree
  1  Documents differ from the source tree
  2  Error during analysis

Example:
  swaggen check -V 1.0.0                 # Basic validation
  swaggen check --ci                     # CI mode with appropriate exit codes
  swaggen check --ignore '/billing/**'   # Ignore changes under a service
  swaggen check --ignore 'Legacy*'       # Ignore definition changes`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", true, "fail on any difference")
	checkCmd.Flags().StringSliceVar(&checkIgnore, "ignore", nil, "glob patterns of paths or definitions to ignore in comparison")
	checkCmd.Flags().BoolVar(&checkCI, "ci", false, "CI mode: use exit codes for status")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, gen, err := newGenerator()
	if err != nil {
		return checkFailure(ExitCodeCheckError, err)
	}

	printVerbose("Check configuration:")
	printVerbose("  Strict mode: %t", checkStrict)
	printVerbose("  CI mode: %t", checkCI)
	if len(checkIgnore) > 0 {
		printVerbose("  Ignored patterns: %s", strings.Join(checkIgnore, ", "))
	}
	printVerbose("  Output: %s", cfg.Output)

	result, err := gen.Build()
	if err != nil {
		return checkFailure(ExitCodeCheckError, fmt.Errorf("failed to generate documents: %w", err))
	}

	format := cfg.Formats[0]
	generated := map[string]*types.Swagger{
		generator.DocsName: result.Docs,
		generator.CodeName: result.Code,
	}

	differ := swagger.NewDiffer()
	inSync := true
	breaking := false

	for _, name := range []string{generator.DocsName, generator.CodeName} {
		path := filepath.Join(cfg.Output, swagger.FileName(name, format))

		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			printError("Document not found: %s", path)
			printInfo("Run 'swaggen generate' first to create the documents")
			return checkFailure(ExitCodeDifference, fmt.Errorf("document not found: %s", path))
		}

		existing, err := swagger.ReadFile(path)
		if err != nil {
			return checkFailure(ExitCodeCheckError, fmt.Errorf("failed to read existing document: %w", err))
		}

		diffResult, err := differ.Diff(existing, generated[name])
		if err != nil {
			return checkFailure(ExitCodeCheckError, fmt.Errorf("failed to compare documents: %w", err))
		}

		diffResult = applyIgnorePatterns(diffResult, checkIgnore)
		if diffResult.IsEmpty() {
			printVerbose("%s is in sync", path)
			continue
		}

		inSync = false
		breaking = breaking || diffResult.HasBreakingChanges
		reportDiff(path, diffResult)
	}

	if inSync {
		printInfo("Documents are in sync with %s", cfg.Source)
		return nil
	}

	if breaking {
		printError("Breaking changes detected!")
	}

	printInfo("Run 'swaggen generate' to update the documents")

	if checkStrict || checkCI {
		return checkFailure(ExitCodeDifference, errors.New("documents differ from the source tree"))
	}

	return nil
}

// checkFailure wraps err in an ExitError in CI mode.
func checkFailure(code int, err error) error {
	if checkCI {
		if code != ExitCodeDifference {
			printError("%v", err)
		}
		return &ExitError{Code: code, Err: err}
	}
	return err
}

func reportDiff(path string, result *swagger.DiffResult) {
	printInfo("%s differs from the source tree:\n", path)
	printInfo(result.Summary)
	printInfo("")

	// Print detailed changes
	if len(result.PathChanges) > 0 {
		printInfo("Path changes:")
		for _, change := range result.PathChanges {
			printInfo("  %s %s %s", swagger.ChangeSymbol(change.Type), change.Method, change.Path)
		}
		printInfo("")
	}

	if len(result.DefinitionChanges) > 0 {
		printInfo("Definition changes:")
		for _, change := range result.DefinitionChanges {
			printInfo("  %s %s", swagger.ChangeSymbol(change.Type), change.Name)
		}
		printInfo("")
	}

	if result.InfoChanged {
		printInfo("Info or tags changed")
		printInfo("")
	}
}

// applyIgnorePatterns filters out changes that match ignore patterns.
func applyIgnorePatterns(result *swagger.DiffResult, patterns []string) *swagger.DiffResult {
	if len(patterns) == 0 {
		return result
	}

	filtered := &swagger.DiffResult{
		PathChanges:       make([]swagger.PathChange, 0),
		DefinitionChanges: make([]swagger.DefinitionChange, 0),
		InfoChanged:       result.InfoChanged,
	}

	// Filter path changes
	for _, change := range result.PathChanges {
		if !matchesAnyPattern(change.Path, patterns) {
			filtered.PathChanges = append(filtered.PathChanges, change)
		}
	}

	// Filter definition changes
	for _, change := range result.DefinitionChanges {
		if !matchesAnyPattern(change.Name, patterns) {
			filtered.DefinitionChanges = append(filtered.DefinitionChanges, change)
		}
	}

	// Recalculate breaking changes
	for _, change := range filtered.PathChanges {
		if change.Type == swagger.DiffTypeRemoved {
			filtered.HasBreakingChanges = true
			break
		}
	}
	if !filtered.HasBreakingChanges {
		for _, change := range filtered.DefinitionChanges {
			if change.Type == swagger.DiffTypeRemoved {
				filtered.HasBreakingChanges = true
				break
			}
		}
	}

	// Regenerate summary
	filtered.Summary = generateFilteredSummary(filtered)

	return filtered
}

// matchesAnyPattern checks if a path or definition name matches any of the
// given doublestar patterns.
func matchesAnyPattern(s string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == s {
			return true
		}
		if matched, _ := doublestar.Match(pattern, s); matched {
			return true
		}
	}
	return false
}

// generateFilteredSummary generates a summary for filtered results.
func generateFilteredSummary(result *swagger.DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected (after applying filters)"
	}

	count := func(t swagger.DiffType) (paths, definitions int) {
		for _, c := range result.PathChanges {
			if c.Type == t {
				paths++
			}
		}
		for _, c := range result.DefinitionChanges {
			if c.Type == t {
				definitions++
			}
		}
		return paths, definitions
	}

	var parts []string
	for _, t := range []swagger.DiffType{swagger.DiffTypeAdded, swagger.DiffTypeRemoved, swagger.DiffTypeModified} {
		paths, definitions := count(t)
		if paths > 0 {
			parts = append(parts, fmt.Sprintf("%d path(s) %s", paths, t))
		}
		if definitions > 0 {
			parts = append(parts, fmt.Sprintf("%d definition(s) %s", definitions, t))
		}
	}
	if result.InfoChanged {
		parts = append(parts, "info modified")
	}

	summary := strings.Join(parts, ", ")
	if result.HasBreakingChanges {
		summary += " [BREAKING CHANGES DETECTED]"
	}

	return summary
}
