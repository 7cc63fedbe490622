package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/splitpane/internal/config"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a layout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, flags, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, flags *rootFlags, path string) error {
	log, err := flags.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	layout, err := config.ParseLayout(path)
	if err != nil {
		log.With("path", path).Debug("layout rejected")
		return newCommandError("validate", "checking "+path, err, "Fix the reported field and run validate again.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid: layout %q with %d pane(s)\n", path, layout.Name, countPanes(&layout.Split))
	return nil
}

func countPanes(s *config.SplitSpec) int {
	n := 0
	for _, p := range s.Panes {
		n++
		if p.Split != nil {
			n += countPanes(p.Split)
		}
	}
	return n
}
