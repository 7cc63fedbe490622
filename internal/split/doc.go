// Package split implements the sizing engine behind a split-pane layout.
//
// A Split owns an ordered list of panes separated by gutters. Pane sizes are
// expressed either as percentages of the container length (UnitPercent) or as
// absolute cells (UnitPixel). In pixel mode exactly one pane is the wildcard: it
// has no size of its own and fills whatever the sized panes leave over.
//
// Panes and gutters share one ordering space. Displayed panes take the even
// slots (0, 2, 4, ...) and gutter n sits in odd slot 2n-1, between the pane
// before it and the pane after it:
//
//	| A | g1 | B | g2 | C |
//	  0   1    2   3    4
//
// Dragging a gutter moves length from one side to the other. When a drag starts
// the engine captures a Snapshot of every pane's size; each pointer move is then
// resolved against that snapshot, so the result depends only on the net offset
// and never accumulates rounding from intermediate moves. Min/max constraints
// stop a pane from absorbing more than it can, and whatever one side cannot
// absorb is handed back so the other side moves by the same amount.
//
// A Split is not safe for concurrent use; drive it from a single goroutine,
// typically the bubbletea update loop.
package split
