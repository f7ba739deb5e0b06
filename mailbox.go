package main

import "sync"

// mailbox is the unbounded outbound queue owned by one participant.
// Producers push under the registry lock and never block; a single drain
// goroutine turns queued events into transport writes. Pushing to a closed
// mailbox silently drops the event, so a broadcast never fails because one
// connection has gone away.
type mailbox struct {
	mu     sync.Mutex
	queue  []Event
	closed bool

	wake chan struct{}
	done chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (m *mailbox) push(ev Event) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.queue = append(m.queue, ev)
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// take removes and returns everything currently queued.
func (m *mailbox) take() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := m.queue
	m.queue = nil
	return out
}

func (m *mailbox) close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	close(m.done)
}
