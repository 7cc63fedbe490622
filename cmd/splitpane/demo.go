package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/splitpane/internal/tui/splitview"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive split layout",
		Long:  `Open the layout full screen. Drag gutters with the mouse or move them with tab and the arrow keys.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}

	return cmd
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	// The screen belongs to the program: logs only go to --log-file.
	log, err := flags.newLogger(nil)
	if err != nil {
		return err
	}
	defer log.Close()

	layout, err := flags.loadLayout("start demo", log)
	if err != nil {
		return err
	}

	log.With("layout", layout.Name).Info("launching demo")

	m := splitview.NewModel(layout, log)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		log.Error(err, "demo failed")
		return fmt.Errorf("failed to run demo: %w", err)
	}

	log.Info("demo closed")
	return nil
}
