package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/splitpane/internal/config"
	"github.com/alexisbeaulieu97/splitpane/internal/logger"
)

type rootFlags struct {
	layoutPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "splitpane",
		Short:         "Resizable split panes for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, run the interactive demo
			if len(args) == 0 {
				return runDemo(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.layoutPath, "layout", "l", "", "Layout file (built-in demo layout when empty)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newSizesCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newFmtCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger writes to the log file when one is set and to w otherwise. A nil
// w discards logs unless a file is set.
func (f *rootFlags) newLogger(w io.Writer) (*logger.Logger, error) {
	if w == nil {
		w = io.Discard
	}

	log, err := logger.New(logger.Options{
		Level:         f.logLevel,
		HumanReadable: true,
		Writer:        w,
		File:          f.logFile,
	})
	if err != nil {
		return nil, newCommandError("start", "configuring logging", err, "Use one of debug, info, warn or error for --log-level and check the log file path.")
	}
	return log, nil
}

// loadLayout reads the layout named by --layout, or the built-in one.
func (f *rootFlags) loadLayout(op string, log *logger.Logger) (*config.Layout, error) {
	if strings.TrimSpace(f.layoutPath) == "" {
		return config.DefaultLayout(), nil
	}

	layout, err := config.ParseLayout(f.layoutPath)
	if err != nil {
		log.Error(err, "layout rejected")
		return nil, newCommandError(op, "loading layout "+f.layoutPath, err, "Run 'splitpane validate <file>' for details.")
	}
	log.With("layout", layout.Name).Debug("layout loaded")
	return layout, nil
}
