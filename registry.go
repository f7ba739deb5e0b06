package main

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry is the shared store of all live sessions. Every mutation of any
// session happens under its single mutex, and all events resulting from one
// mutation are enqueued to the affected mailboxes before the mutex is
// released, so each participant observes events in server-side mutation
// order. The acquire is always blocking: contention delays an action, it
// never drops one.
type Registry struct {
	mu              sync.Mutex
	sessionsCreated int
	sessions        map[string]*Session

	nextWord func() string
	testWord string
}

func newRegistry(nextWord func() string) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		nextWord: nextWord,
	}
}

// setTestWord pins the word returned for every subsequent round, making
// round outcomes deterministic. An empty string restores the word source.
func (r *Registry) setTestWord(word string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.testWord = word
}

func (r *Registry) word() string {
	if r.testWord != "" {
		return r.testWord
	}
	return r.nextWord()
}

// CreateSession allocates the next session id, builds a session containing
// only the creator, and tells the creator the session id and their own
// identity. Id allocation is atomic under the registry mutex.
func (r *Registry) CreateSession(username string, out *mailbox) (*Participant, *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessionsCreated++
	id := strconv.Itoa(1000 + r.sessionsCreated)

	creator := &Participant{
		ID:       uuid.NewString(),
		Username: username,
		out:      out,
	}
	session := newSession(id, creator)
	r.sessions[id] = session

	creator.send(Event{Event: "new_game", Payload: NewGamePayload{ID: id}})
	creator.send(Event{Event: "your_data", Payload: creator.data()})

	return creator, session
}

// JoinSession inserts a new participant into an existing session. Everyone
// already present is told about the joiner first; the joiner then receives
// the pre-existing roster and their own identity, in that order.
func (r *Registry) JoinSession(sessionID, username string, out *mailbox) (*Participant, error) {
	var joiner *Participant

	err := r.WithSession(sessionID, func(s *Session) error {
		others := s.players()

		joiner = &Participant{
			ID:       uuid.NewString(),
			Username: username,
			out:      out,
		}
		s.broadcast(Event{Event: "join", Payload: joiner.data()})
		s.addParticipant(joiner)

		joiner.send(Event{Event: "other_players", Payload: others})
		joiner.send(Event{Event: "your_data", Payload: joiner.data()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return joiner, nil
}

// LeaveSession removes the participant and tells everyone who remains. A
// missing session or participant is a no-op, not an error: the connection
// is already gone either way.
func (r *Registry) LeaveSession(sessionID, participantID string) {
	_ = r.WithSession(sessionID, func(s *Session) error {
		if !s.removeParticipant(participantID) {
			return nil
		}
		s.broadcast(Event{Event: "quit", Payload: QuitPayload{ID: participantID}})
		return nil
	})
}

// WithSession runs fn with exclusive access to one session. It is the
// primitive beneath every session-scoped operation.
func (r *Registry) WithSession(sessionID string, fn func(*Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(session)
}

// reapEmptySessions removes sessions whose roster has been empty longer
// than maxIdle and returns how many were collected.
func (r *Registry) reapEmptySessions(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	reaped := 0
	for id, s := range r.sessions {
		if len(s.roster) == 0 && !s.emptySince.IsZero() && s.emptySince.Before(cutoff) {
			delete(r.sessions, id)
			reaped++
		}
	}
	return reaped
}

// reaperLoop periodically collects defunct sessions.
func (r *Registry) reaperLoop(cfg *Config, maxIdle time.Duration) {
	ticker := time.NewTicker(maxIdle / 2)
	for range ticker.C {
		if n := r.reapEmptySessions(maxIdle); n > 0 {
			logf(cfg, "GAMES: Reaped %d empty session(s)", n)
		}
	}
}
