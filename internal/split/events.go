package split

import "time"

// EventType identifies a gutter notification.
type EventType int

const (
	EventDragStart EventType = iota
	EventDragProgress
	EventDragEnd
	EventGutterClick
	EventGutterDblClick
)

func (t EventType) String() string {
	switch t {
	case EventDragStart:
		return "start"
	case EventDragProgress:
		return "progress"
	case EventDragEnd:
		return "end"
	case EventGutterClick:
		return "click"
	case EventGutterDblClick:
		return "dblclick"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers. Sizes lists the displayed pane sizes at
// the time of the event, the wildcard as nil.
type Event struct {
	Type      EventType
	GutterNum int
	Sizes     []*float64
}

type listener struct {
	id int
	fn func(Event)
}

type pendingClick struct {
	gutter int
	at     time.Time
}

// Subscribe registers fn for every event and returns a function removing it.
// Listeners run synchronously in subscription order.
func (s *Split) Subscribe(fn func(Event)) func() {
	if fn == nil {
		return func() {}
	}
	s.nextListener++
	id := s.nextListener
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Split) notify(t EventType, gutterNum int) {
	ev := Event{Type: t, GutterNum: gutterNum, Sizes: s.VisibleSizes()}
	if t != EventDragProgress {
		s.log.WithFields(map[string]any{
			"event":  t.String(),
			"gutter": gutterNum,
			"sizes":  FormatSizes(ev.Sizes),
		}).Debug("gutter event")
	}

	listeners := make([]listener, len(s.listeners))
	copy(listeners, s.listeners)
	for _, l := range listeners {
		l.fn(ev)
	}
}
