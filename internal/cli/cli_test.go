// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of cmd and its subcommands to its default,
// since flag values outlive a single Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs a command and returns output and error.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

// setupTestDir creates a temporary directory with the given files.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		fullPath := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	}
	return dir
}

// chdir switches to dir for the duration of the test so no config file from
// the surrounding tree is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(originalDir) })
}

var billingTree = map[string]string{
	"info.yml": "title: Payments\ndescription: Payment services\n",
	"billing/info.yml": `title: Billing
profiles:
  - public
`,
	"billing/actions/charge.yml": `description: Charge a card
request:
  model: ChargeRequest
response:
  schema:
    type: object
`,
	"billing/models/ChargeRequest.yml": `type: object
properties:
  amount:
    type: number
`,
	"users/info.yml": `title: Users
profiles:
  - internal
`,
	"users/actions/create.json": `{"request": {"schema": {"type": "object"}}, "responses": {"201": {"name": "Created", "schema": {"type": "string"}}}}`,
}

func TestRootCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "swaggen")
	assert.Contains(t, output, "assembles a directory of service definitions")
	assert.Contains(t, output, "Available Commands")
	assert.Contains(t, output, "generate")
	assert.Contains(t, output, "init")
	assert.Contains(t, output, "check")
	assert.Contains(t, output, "diff")
	assert.Contains(t, output, "watch")
	assert.Contains(t, output, "print")
	assert.Contains(t, output, "version")
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		expected string
	}{
		{name: "config flag short", flag: "-c", expected: "config file"},
		{name: "config flag long", flag: "--config", expected: "config file"},
		{name: "source flag short", flag: "-s", expected: "source directory"},
		{name: "source flag long", flag: "--source", expected: "source directory"},
		{name: "output flag short", flag: "-t", expected: "output directory"},
		{name: "output flag long", flag: "--output", expected: "output directory"},
		{name: "version flag short", flag: "-V", expected: "version written to the info block"},
		{name: "profiles flag short", flag: "-p", expected: "comma separated profiles"},
		{name: "services flag short", flag: "-S", expected: "comma separated service names"},
		{name: "verbose flag short", flag: "-v", expected: "verbose output"},
		{name: "verbose flag long", flag: "--verbose", expected: "verbose output"},
		{name: "quiet flag short", flag: "-q", expected: "suppress"},
		{name: "quiet flag long", flag: "--quiet", expected: "suppress"},
	}

	output, err := executeCommand(rootCmd, "--help")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, output, tt.flag)
			assert.Contains(t, output, tt.expected)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "version")
	require.NoError(t, err)

	assert.Contains(t, output, "swaggen")
	assert.Contains(t, output, "Commit")
	assert.Contains(t, output, "Build Date")
	assert.Contains(t, output, "Swagger:    2.0")
	assert.Contains(t, output, "Go Version")
	assert.Contains(t, output, "OS/Arch")
}

func TestInitCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "init", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Initialize a new swaggen configuration file")
	assert.Contains(t, output, "--service")
	assert.Contains(t, output, "--force")
}

func TestGenerateCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "generate", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Generate Swagger 2.0 documents")
	assert.Contains(t, output, "--dry-run")
	assert.Contains(t, output, "--profiles")
	assert.Contains(t, output, "--services")
}

func TestCheckCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "check", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Check regenerates the Swagger documents")
	assert.Contains(t, output, "--strict")
	assert.Contains(t, output, "--ignore")
	assert.Contains(t, output, "--ci")
}

func TestDiffCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "diff", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Compare two Swagger documents")
	assert.Contains(t, output, "--artifact")
}

func TestWatchCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "watch", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Watch the source directory")
	assert.Contains(t, output, "--debounce")
}

func TestPrintCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "print", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Print one generated document")
	assert.Contains(t, output, "--format")
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Contains(t, info, "swaggen")
	assert.Contains(t, info, "commit")
	assert.Contains(t, info, "built")

	output, err := executeCommand(rootCmd, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, info+"\n", output)
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: ExitCodeDifference}
	assert.Equal(t, "exit status 1", err.Error())

	wrapped := &ExitError{Code: ExitCodeCheckError, Err: os.ErrNotExist}
	assert.Equal(t, os.ErrNotExist.Error(), wrapped.Error())
	assert.ErrorIs(t, wrapped, os.ErrNotExist)
}
