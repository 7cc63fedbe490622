package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/splitpane/internal/config"
	"github.com/alexisbeaulieu97/splitpane/internal/logger"
	"github.com/alexisbeaulieu97/splitpane/internal/tui/splitview"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type renderOptions struct {
	width  int
	height int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a single frame of the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Frame width in cells (terminal width when omitted)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Frame height in cells (terminal height when omitted)")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions) error {
	log, err := flags.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	layout, err := flags.loadLayout("render", log)
	if err != nil {
		return err
	}

	width, height := frameSize(opts)
	if width <= 0 || height <= 0 {
		return newCommandError("render", fmt.Sprintf("sizing a %dx%d frame", width, height), fmt.Errorf("frame size must be positive"), "Pass --width and --height greater than zero.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderFrame(layout, width, height, log))
	return nil
}

// frameSize picks the flag values, falling back to the terminal size and then
// to 80x24.
func frameSize(opts *renderOptions) (int, int) {
	width, height := opts.width, opts.height
	if width != 0 && height != 0 {
		return width, height
	}

	termWidth, termHeight := defaultWidth, defaultHeight
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			termWidth, termHeight = w, h
		}
	}

	if width == 0 {
		width = termWidth
	}
	if height == 0 {
		height = termHeight
	}
	return width, height
}

func renderFrame(layout *config.Layout, width, height int, log *logger.Logger) string {
	var m tea.Model = splitview.NewModel(layout, log)
	m, _ = m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m.View()
}
