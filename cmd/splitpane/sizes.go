package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/splitpane/internal/split"
)

type sizesOptions struct {
	length int
	set    string
}

func newSizesCmd(flags *rootFlags) *cobra.Command {
	opts := &sizesOptions{}

	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "Print the resolved sizes of the top level split",
		Long: `Resolve the top level split of the layout for a container length and print,
for every displayed pane, its size, its bounds, its flex style and the cells it gets.
--set applies new sizes first, written as a space separated list where "*" marks
the wildcard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSizes(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVar(&opts.length, "length", 100, "Container length along the split axis, in cells")
	cmd.Flags().StringVar(&opts.set, "set", "", `Sizes to apply, e.g. "30 70" or "* 20"`)

	return cmd
}

func runSizes(cmd *cobra.Command, flags *rootFlags, opts *sizesOptions) error {
	log, err := flags.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	layout, err := flags.loadLayout("resolve sizes", log)
	if err != nil {
		return err
	}

	s, _ := layout.Split.Build(opts.length, log)

	if strings.TrimSpace(opts.set) != "" {
		sizes, err := parseSizes(opts.set)
		if err != nil {
			return newCommandError("resolve sizes", "reading --set", err, `Use numbers separated by spaces and "*" for the wildcard.`)
		}
		if err := s.SetVisibleSizes(sizes); err != nil {
			return newCommandError("resolve sizes", "applying --set", err, fmt.Sprintf("Give %d sizes that suit a %s split.", s.Len(), s.Options().Unit))
		}
	}

	printSizes(cmd, s)
	return nil
}

func printSizes(cmd *cobra.Command, s *split.Split) {
	opts := s.Options()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s split, length %d, %d gutter(s)\n\n", opts.Direction, opts.Unit, int(opts.Length), s.GutterCount())

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PANE\tSIZE\tMIN\tMAX\tFLEX\tCELLS")

	sizes := s.VisibleSizes()
	styles := s.Styles()
	cells := s.PaneCells()
	for i, p := range s.Panes() {
		minSize, maxSize, _ := s.Bounds(p)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			p.ID,
			split.FormatSize(sizes[i]),
			boundOrDash(minSize),
			boundOrDash(maxSize),
			styles[i],
			cells[i],
		)
	}
	_ = tw.Flush()

	if hidden := s.HiddenPanes(); len(hidden) > 0 {
		ids := make([]string, len(hidden))
		for i, p := range hidden {
			ids[i] = p.ID
		}
		fmt.Fprintf(out, "\nhidden: %s\n", strings.Join(ids, ", "))
	}
}

// parseSizes reads a size list such as "30 70" or "* 20".
func parseSizes(raw string) ([]*float64, error) {
	fields := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	sizes := make([]*float64, 0, len(fields))
	for _, f := range fields {
		if f == "*" {
			sizes = append(sizes, nil)
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q", f)
		}
		sizes = append(sizes, split.Size(v))
	}
	return sizes, nil
}

func boundOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return split.FormatSize(v)
}
