package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/zugferd/internal/ram"
)

var fixture = filepath.Join("..", "..", "..", "internal", "docspec", "testdata", "invoice.yaml")

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// buildArgs spells out every build flag; flag values survive between runs.
func buildArgs(profile string, strict bool, format, out string, files ...string) []string {
	args := []string{"build",
		"--profile=" + profile,
		"--format=" + format,
		"--output=" + out,
	}
	if strict {
		args = append(args, "--strict=true")
	} else {
		args = append(args, "--strict=false")
	}
	return append(args, files...)
}

func TestProfilesCommand(t *testing.T) {
	stdout, _, err := execute(t, "profiles")
	require.NoError(t, err)

	assert.Contains(t, stdout, "GUIDELINE")
	assert.Contains(t, stdout, "BASIC WL")
	assert.Contains(t, stdout, "urn:factur-x.eu:1p0:minimum")
}

func TestCapabilitiesCommand(t *testing.T) {
	stdout, _, err := execute(t, "capabilities", "min")
	require.NoError(t, err)
	assert.Contains(t, stdout, ram.DocumentID.Field().String())

	_, _, err = execute(t, "capabilities", "gold")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown profile: gold")
}

func TestBuildCommand(t *testing.T) {
	stdout, stderr, err := execute(t, buildArgs("", false, "json", "", fixture)...)
	require.NoError(t, err)

	assert.Contains(t, stdout, `"profile": "EN16931"`)
	assert.Contains(t, stdout, "RE-2026-0042")
	assert.NotContains(t, stderr, "dropped")
}

func TestBuildCommandReportsDroppedValues(t *testing.T) {
	stdout, stderr, err := execute(t, buildArgs("minimum", false, "json", "", fixture)...)
	require.NoError(t, err)

	assert.Contains(t, stdout, `"profile": "MINIMUM"`)
	assert.Contains(t, stderr, "not supported by MINIMUM were dropped")
}

func TestBuildCommandStrict(t *testing.T) {
	_, _, err := execute(t, buildArgs("minimum", true, "json", "", fixture)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported by this profile")
}

func TestBuildCommandWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "invoice.yaml")
	stdout, _, err := execute(t, buildArgs("en16931", false, "yaml", out, fixture)...)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "profile: EN16931")
}

func TestBuildCommandErrors(t *testing.T) {
	_, _, err := execute(t, buildArgs("", false, "xml", "", fixture)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")

	_, _, err = execute(t, buildArgs("", false, "json", "", "missing.yaml")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	out := filepath.Join(t.TempDir(), "out.json")
	_, _, err = execute(t, buildArgs("", false, "json", out, fixture, fixture)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output needs a single description")
}

func TestCheckCommand(t *testing.T) {
	stdout, _, err := execute(t, "check", fixture)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[1], "MINIMUM")
	assert.Contains(t, lines[1], "lossy")
	assert.Contains(t, lines[4], "EN16931")
	assert.Contains(t, lines[4], "ok")
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("profile: basic\n"), 0o600))
	}

	files, err := collectFiles([]string{dir})
	require.NoError(t, err)
	assert.Len(t, files, 2)

	files, err = collectFiles([]string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "notes.txt")}, files)
}
