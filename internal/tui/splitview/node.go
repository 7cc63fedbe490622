package splitview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/splitpane/internal/config"
	"github.com/alexisbeaulieu97/splitpane/internal/logger"
	"github.com/alexisbeaulieu97/splitpane/internal/split"
	"github.com/alexisbeaulieu97/splitpane/internal/tui/components"
)

// rect is a cell rectangle on screen.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// gutterRef names one gutter of one split and where it sits on screen.
type gutterRef struct {
	node *node
	num  int
	rect rect
}

func (g gutterRef) same(o *gutterRef) bool {
	return o != nil && g.node == o.node && g.num == o.num
}

// child is what a pane holds: a nested split or a leaf content.
type child struct {
	title   string
	content components.Content
	node    *node
}

// node is one split of the layout tree.
type node struct {
	name     string
	split    *split.Split
	panes    []*split.Pane
	initial  []*float64
	children map[*split.Pane]*child

	rect    rect
	gutters []gutterRef
}

// shared holds the contents every node may point at.
type shared struct {
	log    *logger.Logger
	events *components.EventLog
	meter  *components.SizeMeter
	table  *components.ElementsTable
}

func buildNode(name string, spec *config.SplitSpec, deps *shared) *node {
	s, panes := spec.Build(0, deps.log.With("split", name))

	n := &node{
		name:     name,
		split:    s,
		panes:    panes,
		initial:  make([]*float64, len(panes)),
		children: make(map[*split.Pane]*child, len(panes)),
	}

	for i := range spec.Panes {
		ps := &spec.Panes[i]
		pane := panes[i]
		n.initial[i] = ps.Size.Pointer()

		c := &child{title: ps.DisplayTitle()}
		if ps.Split != nil {
			c.node = buildNode(ps.ID, ps.Split, deps)
		} else {
			c.content = contentFor(ps, deps)
		}
		n.children[pane] = c
	}

	s.Subscribe(func(ev split.Event) {
		if ev.Type == split.EventDragEnd {
			n.syncSizes(ev.Sizes)
		}
		if ev.Type == split.EventDragProgress {
			return
		}
		deps.events.Append(ev.Type.String(), fmt.Sprintf("%-8s %s/%d  %s", ev.Type, n.name, ev.GutterNum, split.FormatSizes(ev.Sizes)))
	})

	return n
}

func contentFor(ps *config.PaneSpec, deps *shared) components.Content {
	switch ps.ContentKind() {
	case config.ContentElements:
		return deps.table
	case config.ContentLog:
		return deps.events
	case config.ContentMeter:
		return deps.meter
	default:
		return components.NewText(ps.Text)
	}
}

// syncSizes writes the sizes a drag settled on back onto the panes, so later
// rebuilds start from them.
func (n *node) syncSizes(sizes []*float64) {
	for i, p := range n.split.Panes() {
		if i < len(sizes) {
			p.Size = sizes[i]
		}
	}
}

// reset restores the sizes and pane order the layout started with. Parked
// panes stay parked.
func (n *node) reset() {
	for _, p := range n.split.Panes() {
		n.split.RemovePane(p)
	}
	for i, p := range n.panes {
		if n.initial[i] != nil {
			v := *n.initial[i]
			p.Size = &v
		} else {
			p.Size = nil
		}
	}
	for _, p := range n.panes {
		if p.Visible {
			n.split.AddPane(p)
		}
	}
	for _, c := range n.children {
		if c.node != nil {
			c.node.reset()
		}
	}
}

// showAll brings back every parked pane, nested ones included.
func (n *node) showAll() int {
	shown := 0
	for _, p := range n.split.HiddenPanes() {
		n.split.ShowPane(p)
		shown++
	}
	for _, c := range n.children {
		if c.node != nil {
			shown += c.node.showAll()
		}
	}
	return shown
}

func (n *node) axisLength(r rect) int {
	if n.split.Options().Direction == split.Vertical {
		return r.H
	}
	return r.W
}

func (n *node) segmentRect(seg split.Segment) rect {
	if n.split.Options().Direction == split.Vertical {
		return rect{X: n.rect.X, Y: n.rect.Y + seg.Offset, W: n.rect.W, H: seg.Length}
	}
	return rect{X: n.rect.X + seg.Offset, Y: n.rect.Y, W: seg.Length, H: n.rect.H}
}

// layout places the node in r and recurses into nested splits.
func (n *node) layout(r rect) {
	n.rect = r
	n.split.SetLength(float64(n.axisLength(r)))
	n.gutters = n.gutters[:0]

	displayed := n.split.Panes()
	for _, seg := range n.split.Layout() {
		sub := n.segmentRect(seg)
		if seg.Kind == split.SegmentGutter {
			n.gutters = append(n.gutters, gutterRef{node: n, num: seg.Index, rect: sub})
			continue
		}
		if c := n.children[displayed[seg.Index]]; c != nil && c.node != nil {
			c.node.layout(sub)
		}
	}
}

// collectGutters lists gutters depth first, parents before their nested splits.
func (n *node) collectGutters(out []gutterRef) []gutterRef {
	out = append(out, n.gutters...)
	for _, p := range n.split.Panes() {
		if c := n.children[p]; c != nil && c.node != nil {
			out = c.node.collectGutters(out)
		}
	}
	return out
}

func (n *node) walk(fn func(*node)) {
	fn(n)
	for _, p := range n.panes {
		if c := n.children[p]; c != nil && c.node != nil {
			c.node.walk(fn)
		}
	}
}

// renderState tells node rendering which gutters to highlight.
type renderState struct {
	focus *gutterRef
	drag  *gutterRef
}

func (n *node) render(st renderState) string {
	if n.rect.W <= 0 || n.rect.H <= 0 {
		return ""
	}

	segs := n.split.Layout()
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].Offset < segs[j].Offset })

	vertical := n.split.Options().Direction == split.Vertical
	displayed := n.split.Panes()
	blocks := make([]string, 0, len(segs))
	for _, seg := range segs {
		if seg.Length <= 0 {
			continue
		}
		sub := n.segmentRect(seg)
		if seg.Kind == split.SegmentGutter {
			ref := gutterRef{node: n, num: seg.Index}
			blocks = append(blocks, renderGutter(sub, vertical, ref.same(st.focus), ref.same(st.drag)))
			continue
		}
		blocks = append(blocks, n.renderPane(n.children[displayed[seg.Index]], sub, st))
	}

	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (n *node) renderPane(c *child, r rect, st renderState) string {
	if c == nil {
		return blank(r.W, r.H)
	}
	if c.node != nil {
		return c.node.render(st)
	}

	title := paneTitleStyle.Inline(true).Width(r.W).MaxWidth(r.W).Render(" " + c.title)
	if r.H == 1 {
		return title
	}
	body := c.content.Render(r.W, r.H-1)
	if body == "" {
		body = blank(r.W, r.H-1)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

func renderGutter(r rect, vertical, focused, dragging bool) string {
	style := gutterStyle
	switch {
	case dragging:
		style = draggingGutterStyle
	case focused:
		style = focusedGutterStyle
	}

	if vertical {
		line := strings.Repeat("─", r.W)
		return style.Render(strings.TrimSuffix(strings.Repeat(line+"\n", r.H), "\n"))
	}
	line := strings.Repeat("│", r.W)
	return style.Render(strings.TrimSuffix(strings.Repeat(line+"\n", r.H), "\n"))
}

func blank(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	return strings.TrimSuffix(strings.Repeat(line+"\n", h), "\n")
}
