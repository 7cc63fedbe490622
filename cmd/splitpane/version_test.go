package main

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func setBuildInfo(t *testing.T, v, c, d string) {
	t.Helper()
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = v, c, d
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	setBuildInfo(t, "1.2.3", "abcdef1", "2025-10-03")

	stdout, _, err := executeCommand("version")
	require.NoError(t, err)
	require.Contains(t, stdout, "splitpane 1.2.3\n")
	require.Contains(t, stdout, "commit: abcdef1\n")
	require.Contains(t, stdout, "built: 2025-10-03\n")
	require.Contains(t, stdout, "go: "+runtime.Version())
}

func TestVersionCommandShort(t *testing.T) {
	setBuildInfo(t, "1.2.3", "abcdef1", "2025-10-03")

	stdout, _, err := executeCommand("version", "--short")
	require.NoError(t, err)
	require.Equal(t, "1.2.3\n", stdout)
}

func TestVersionCommandDevBuild(t *testing.T) {
	setBuildInfo(t, "dev", "none", "unknown")

	stdout, _, err := executeCommand("version")
	require.NoError(t, err)
	require.Contains(t, stdout, "commit: none")
	require.NotEmpty(t, resolvedVersion())
}

func TestVersionCommandRejectsArgs(t *testing.T) {
	_, _, err := executeCommand("version", "extra")
	require.Error(t, err)
}
