// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/swaggen/swaggen/internal/config"
	"github.com/swaggen/swaggen/internal/loader"
	"github.com/swaggen/swaggen/internal/util"
	"github.com/swaggen/swaggen/pkg/types"
)

// defaultConfigFile is the file written by init.
const defaultConfigFile = "swaggen.yaml"

var (
	initForce       bool
	initService     string
	initTitle       string
	initDescription string
	initProfiles    []string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a swaggen configuration file or a new service",
	Long: `Initialize a new swaggen configuration file in the current directory.

This command creates a swaggen.yaml file with the default settings and any
global flags given, each key documented by a comment.

With --service, a service skeleton is created under the source directory
instead: an info.yml titled after the service plus empty actions/ and
models/ directories.

Example:
  swaggen init                                   # Create swaggen.yaml
  swaggen init -s spec -t build/swagger          # Custom directories
  swaggen init --force                           # Overwrite existing config
  swaggen init --service order-history           # Scaffold spec/order-history
  swaggen init --service billing --profile public`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
	initCmd.Flags().StringVar(&initService, "service", "", "scaffold a service directory with this name")
	initCmd.Flags().StringVar(&initTitle, "title", "", "service title (default: derived from the service name)")
	initCmd.Flags().StringVar(&initDescription, "description", "", "service description")
	initCmd.Flags().StringSliceVar(&initProfiles, "profile", nil, "profiles declared by the service")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := defaultConfigFile
	if cfgFile != "" {
		configFile = cfgFile
	}

	// The file named by --config may be the one about to be created.
	existing := cfgFile
	if _, err := os.Stat(existing); err != nil {
		existing = ""
	}

	cfg, err := loadConfigFrom(existing)
	if err != nil {
		return err
	}

	if initService != "" {
		return scaffoldService(cfg.Source, initService)
	}

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	output, err := buildConfigYAML(cfg)
	if err != nil {
		return err
	}

	// Write config file
	if err := os.WriteFile(configFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("Source: %s", cfg.Source)
	printVerbose("Output: %s", cfg.Output)

	return nil
}

// scaffoldService creates root/name with an info block and empty actions
// and models directories.
func scaffoldService(root, name string) error {
	if err := validateServiceName(name); err != nil {
		return err
	}

	dir := filepath.Join(root, name)
	infoPath := filepath.Join(dir, "info.yml")
	if _, err := os.Stat(infoPath); err == nil && !initForce {
		return fmt.Errorf("service %s already exists, use --force to overwrite", dir)
	}

	for _, sub := range []string{loader.ActionsDir, loader.ModelsDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", sub, err)
		}
	}

	info := types.Info{
		Title:       initTitle,
		Description: initDescription,
		Profiles:    util.SplitList(initProfiles...),
	}
	if info.Title == "" {
		info.Title = util.TitleCase(name)
	}

	data, err := yaml.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode info block: %w", err)
	}
	if err := os.WriteFile(infoPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", infoPath, err)
	}

	printInfo("Created service %s", dir)
	printVerbose("Title: %s", info.Title)
	return nil
}

// validateServiceName rejects names that would not be loaded as a service
// or that escape the source directory.
func validateServiceName(name string) error {
	switch {
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("invalid service name %q: must not contain path separators", name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("invalid service name %q: hidden directories are not loaded", name)
	case strings.TrimSpace(name) != name:
		return errors.New("invalid service name: leading or trailing blanks")
	}
	return nil
}

// configComments documents the top-level keys of the generated config file.
var configComments = map[string]string{
	"source":    "# Directory holding one subdirectory per service",
	"output":    "# Directory the swagger_docs, swagger_code and specification files are written to",
	"version":   "# Version written to the info block (required to generate)",
	"profiles":  "# Keep only services declaring one of these profiles (empty keeps all)",
	"services":  "# Keep only these services (empty keeps all)",
	"formats":   "# Output formats written for every document: yaml, json",
	"json":      "# JSON output settings",
	"documents": "# Glob patterns selecting action and model documents",
	"watch":     "# Debounce in milliseconds for the watch command",
}

// buildConfigYAML builds a YAML config with helpful comments.
func buildConfigYAML(cfg *config.Config) (string, error) {
	var node yaml.Node
	if err := node.Encode(cfg); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if comment, ok := configComments[key.Value]; ok {
			key.HeadComment = comment
		}
	}

	data, err := yaml.Marshal(&node)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	// Add header comment
	header := `# swaggen configuration file
# Every key can be overridden with a SWAGGEN_ environment variable,
# e.g. SWAGGEN_VERSION=1.2.0 or SWAGGEN_WATCH_DEBOUNCE=250.

`
	return header + string(data), nil
}
