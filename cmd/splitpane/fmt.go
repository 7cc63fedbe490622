package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/splitpane/internal/config"
	"github.com/alexisbeaulieu97/splitpane/pkg/diff"
)

type fmtOptions struct {
	diff  bool
	write bool
}

func newFmtCmd(flags *rootFlags) *cobra.Command {
	opts := &fmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a layout file in canonical form",
		Long: `Parse and validate a layout file, then print it back in canonical form.
--diff prints a unified diff against the file instead, --write updates the file in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVarP(&opts.diff, "diff", "d", false, "Print a diff instead of the formatted layout")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Write the formatted layout back to the file")

	return cmd
}

func runFmt(cmd *cobra.Command, flags *rootFlags, opts *fmtOptions, path string) error {
	log, err := flags.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	original, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("format", "reading "+path, err, "Check that the file exists and is readable.")
	}

	layout, err := config.DecodeLayout(original, path)
	if err != nil {
		return newCommandError("format", "checking "+path, err, "Run 'splitpane validate "+path+"' and fix the reported field.")
	}

	formatted, err := layout.Marshal()
	if err != nil {
		return newCommandError("format", "encoding "+path, err, "Report this layout, it should always encode.")
	}

	if opts.diff {
		fmt.Fprint(cmd.OutOrStdout(), diff.Unified(original, formatted, path, path+" (formatted)"))
	}

	if opts.write {
		if bytes.Equal(original, formatted) {
			log.With("path", path).Debug("layout already formatted")
			return nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return newCommandError("format", "writing "+path, err, "Check the file permissions.")
		}
		if err := os.WriteFile(path, formatted, info.Mode().Perm()); err != nil {
			return newCommandError("format", "writing "+path, err, "Check the file permissions.")
		}
		log.With("path", path).Info("layout formatted")
		return nil
	}

	if !opts.diff {
		_, _ = cmd.OutOrStdout().Write(formatted)
	}
	return nil
}
