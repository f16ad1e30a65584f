package input

import "github.com/gdamore/tcell/v2"

// Screen reads controls from a tcell screen's event queue.
type Screen struct {
	events chan tcell.Event
	quit   chan struct{}
}

func OpenScreen(screen tcell.Screen) *Screen {
	s := &Screen{
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(s.events, s.quit)
	return s
}

func (s *Screen) Poll() []Command {
	return drain(len(s.events), func() Command {
		if ev, ok := (<-s.events).(*tcell.EventKey); ok {
			return ScreenCommand(ev)
		}
		return None
	})
}

func (s *Screen) Close() error {
	close(s.quit)
	return nil
}
