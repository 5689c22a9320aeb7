package game

import (
	"sync"
)

// recordingEmitter captures every emitted event so tests can assert on
// delivery targets, ordering and payload contents.
type recordingEmitter struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	Target  string // empty for broadcasts
	Event   string
	Payload interface{}
}

func newRecordingEmitter() *recordingEmitter {
	return &recordingEmitter{}
}

func (e *recordingEmitter) Broadcast(event string, payload interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, recordedEvent{Event: event, Payload: payload})
}

func (e *recordingEmitter) EmitTo(playerID string, event string, payload interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, recordedEvent{Target: playerID, Event: event, Payload: payload})
}

func (e *recordingEmitter) named(event string) []recordedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []recordedEvent
	for _, ev := range e.events {
		if ev.Event == event {
			out = append(out, ev)
		}
	}
	return out
}

func (e *recordingEmitter) count(event string) int {
	return len(e.named(event))
}

func (e *recordingEmitter) last(event string) (recordedEvent, bool) {
	events := e.named(event)
	if len(events) == 0 {
		return recordedEvent{}, false
	}
	return events[len(events)-1], true
}

// advance drives the transition engine directly, standing in for a phase
// timeout without waiting for the wall clock.
func advance(g *Game) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.advancePhaseLocked()
}

func currentPhase(g *Game) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return string(g.phase)
}

func stopClock(g *Game) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopClockLocked()
}
