package splitview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/splitpane/internal/config"
	"github.com/alexisbeaulieu97/splitpane/internal/logger"
	"github.com/alexisbeaulieu97/splitpane/internal/split"
	"github.com/alexisbeaulieu97/splitpane/internal/tui/components"
)

const (
	headerHeight = 1
	footerHeight = 1
)

// Model is the Bubbletea state of the interactive split layout.
type Model struct {
	layout *config.Layout
	log    *logger.Logger
	root   *node
	deps   *shared

	width  int
	height int

	// focus indexes the gutter list returned by Gutters.
	focus int
	// press is the gutter under the last mouse press, kept until release.
	press *gutterRef

	status   string
	quitting bool
}

// NewModel builds the model for layout. A nil layout falls back to
// config.DefaultLayout and a nil logger discards everything.
func NewModel(layout *config.Layout, log *logger.Logger) Model {
	if layout == nil {
		layout = config.DefaultLayout()
	}
	if log == nil {
		log = logger.Nop()
	}

	deps := &shared{
		log:    log,
		events: components.NewEventLog(components.DefaultEventLogLimit),
		meter:  components.NewSizeMeter(),
		table:  components.NewElementsTable(components.SampleElements),
	}

	return Model{
		layout: layout,
		log:    log,
		root:   buildNode("root", &layout.Split, deps),
		deps:   deps,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Split returns the top level split.
func (m Model) Split() *split.Split {
	return m.root.split
}

// Splits returns every split in the layout keyed by name. The top level split
// is "root"; nested ones are named after the pane holding them.
func (m Model) Splits() map[string]*split.Split {
	out := make(map[string]*split.Split)
	m.root.walk(func(n *node) {
		out[n.name] = n.split
	})
	return out
}

// Gutters returns the number of gutters currently on screen.
func (m Model) Gutters() int {
	return len(m.gutters())
}

// FocusedGutter returns the split name and gutter number holding focus.
func (m Model) FocusedGutter() (string, int, bool) {
	g := m.focused()
	if g == nil {
		return "", 0, false
	}
	return g.node.name, g.num, true
}

// Events returns the lines of the event log.
func (m Model) Events() []string {
	return m.deps.events.Lines()
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) gutters() []gutterRef {
	return m.root.collectGutters(nil)
}

func (m Model) focused() *gutterRef {
	gutters := m.gutters()
	if len(gutters) == 0 {
		return nil
	}
	idx := m.focus % len(gutters)
	if idx < 0 {
		idx += len(gutters)
	}
	return &gutters[idx]
}

func (m Model) body() rect {
	h := m.height - headerHeight - footerHeight
	if h < 0 {
		h = 0
	}
	return rect{X: 0, Y: headerHeight, W: m.width, H: h}
}

// relayout recomputes every split length and gutter position from the
// current window size, then points the meter at the focused split.
func (m *Model) relayout() {
	m.root.layout(m.body())
	if gutters := len(m.gutters()); gutters > 0 {
		m.focus = ((m.focus % gutters) + gutters) % gutters
	} else {
		m.focus = 0
	}
	m.deps.meter.Track(m.meterTarget())
}

// meterTarget is the split whose sizes the meter shows: the one owning the
// focused gutter.
func (m Model) meterTarget() *split.Split {
	if g := m.focused(); g != nil {
		return g.node.split
	}
	return m.root.split
}

func (m Model) gutterAt(x, y int) (int, *gutterRef) {
	for i, g := range m.gutters() {
		if g.rect.contains(x, y) {
			g := g
			return i, &g
		}
	}
	return -1, nil
}
