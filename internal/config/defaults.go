package config

// DefaultLayout returns the layout the demo starts with when no file is given:
// an elements table beside a column holding the size meter, the event log and a
// short help text.
func DefaultLayout() *Layout {
	hidden := false
	minTable := 20.0
	maxTable := 80.0
	minSide := 4.0

	return &Layout{
		Version:     "1",
		Name:        "elements",
		Description: "Periodic table beside a live event log",
		Split: SplitSpec{
			Direction:  "horizontal",
			Unit:       "percent",
			GutterStep: 1,
			DblClickMs: 300,
			Panes: []PaneSpec{
				{
					ID:      "table",
					Title:   "Elements",
					Size:    Fixed(60),
					MinSize: &minTable,
					MaxSize: &maxTable,
					Content: ContentElements,
				},
				{
					ID:        "side",
					Title:     "Split",
					Size:      Fixed(40),
					MinPixels: &minSide,
					Split: &SplitSpec{
						Direction: "vertical",
						Unit:      "pixel",
						Panes: []PaneSpec{
							{ID: "meter", Title: "Sizes", Size: Fixed(6), Content: ContentMeter},
							{ID: "events", Title: "Events", Size: Wildcard(), Content: ContentLog},
							{
								ID:      "help",
								Title:   "Help",
								Size:    Fixed(5),
								Content: ContentText,
								Text:    "drag a gutter or use tab and arrows\nh hide  s show  r reset  q quit",
							},
							{
								ID:      "notes",
								Title:   "Notes",
								Size:    Fixed(4),
								Visible: &hidden,
								Content: ContentText,
								Text:    "parked pane, press s to show it",
							},
						},
					},
				},
			},
		},
	}
}
