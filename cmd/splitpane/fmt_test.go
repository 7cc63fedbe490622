package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/splitpane/internal/config"
)

const sloppyLayout = `version: "1"
name: sloppy
split:
    unit: pixel
    panes:
        - id: side
          size: 20
        - {id: main, size: "*"}
`

func TestFmtCommand(t *testing.T) {
	t.Run("prints canonical form", func(t *testing.T) {
		path := writeLayout(t, sloppyLayout)
		stdout, _, err := executeCommand("fmt", path)
		require.NoError(t, err)
		require.Contains(t, stdout, "  unit: pixel\n")
		require.Contains(t, stdout, "    - id: main\n")

		layout, err := config.DecodeLayout([]byte(stdout), "stdout")
		require.NoError(t, err)
		require.Equal(t, "sloppy", layout.Name)
	})

	t.Run("prints a diff", func(t *testing.T) {
		path := writeLayout(t, sloppyLayout)
		stdout, _, err := executeCommand("fmt", "--diff", path)
		require.NoError(t, err)
		require.Contains(t, stdout, "--- "+path+"\n")
		require.Contains(t, stdout, "+++ "+path+" (formatted)\n")
		require.Contains(t, stdout, "-    unit: pixel\n")
		require.Contains(t, stdout, "+  unit: pixel\n")
	})

	t.Run("writes in place", func(t *testing.T) {
		path := writeLayout(t, sloppyLayout)
		_, _, err := executeCommand("fmt", "-w", path)
		require.NoError(t, err)

		first, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NotEqual(t, sloppyLayout, string(first))

		stdout, _, err := executeCommand("fmt", "-d", path)
		require.NoError(t, err)
		require.Empty(t, stdout, "formatted files have no diff")
	})

	t.Run("rejects invalid layouts", func(t *testing.T) {
		path := writeLayout(t, "version: \"1\"\nname: x\nsplit:\n  panes: []\n")
		_, _, err := executeCommand("fmt", path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "Failed to format")
	})
}
