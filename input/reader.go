package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/whale-simulator/constants"
	"github.com/lixenwraith/whale-simulator/engine"
)

// EventSource delivers terminal events; tcell.Screen satisfies it
type EventSource interface {
	PollEvent() tcell.Event
}

// Reader turns terminal events into one intent per tick without blocking the loop
type Reader struct {
	keys   *KeyTable
	events chan tcell.Event
}

// NewReader creates a reader; a nil table selects the default bindings
func NewReader(keys *KeyTable) *Reader {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Reader{
		keys:   keys,
		events: make(chan tcell.Event, constants.InputQueueSize),
	}
}

// Start launches the poller goroutine. It exits when the source returns nil,
// which tcell does once the screen is finalized.
func (r *Reader) Start(src EventSource, onPanic func(any)) {
	go func() {
		if onPanic != nil {
			defer func() {
				if p := recover(); p != nil {
					onPanic(p)
				}
			}()
		}

		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			r.Push(ev)
		}
	}()
}

// Push queues an event, dropping it if the queue is full
func (r *Reader) Push(ev tcell.Event) bool {
	select {
	case r.events <- ev:
		return true
	default:
		return false
	}
}

// Poll drains pending events and returns the latest directional intent.
// A quit key anywhere in the backlog wins. Returns IntentNone when idle.
func (r *Reader) Poll() engine.Intent {
	latest := engine.IntentNone
	for {
		select {
		case ev := <-r.events:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			switch intent := r.keys.Lookup(key); {
			case intent == engine.IntentQuit:
				latest = engine.IntentQuit
			case intent.IsDirection() && latest != engine.IntentQuit:
				latest = intent
			}
		default:
			return latest
		}
	}
}
