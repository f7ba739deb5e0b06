package main

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

// Participant is one connected user within a session. The hint pointer is
// nil until the participant has submitted a hint for the active round.
type Participant struct {
	ID       string
	Username string

	hint *string
	out  *mailbox
}

// send enqueues an event for this participant. Participants whose
// connection has closed keep their roster entry until the leave sequence
// runs; events addressed to them in the meantime are dropped by the mailbox.
func (p *Participant) send(ev Event) {
	if p.out == nil {
		return
	}
	p.out.push(ev)
}

func (p *Participant) data() PlayerData {
	return PlayerData{ID: p.ID, Username: p.Username}
}

// Session is one live game: its roster, the rotation order deciding the
// next guesser, and the active round's word. turnOrder is always a
// permutation of the roster keys.
type Session struct {
	ID string

	roster      map[string]*Participant
	turnOrder   []string
	wordToGuess string
	hintsShared bool

	emptySince time.Time
}

func newSession(id string, creator *Participant) *Session {
	return &Session{
		ID:        id,
		roster:    map[string]*Participant{creator.ID: creator},
		turnOrder: []string{creator.ID},
	}
}

func (s *Session) addParticipant(p *Participant) {
	s.roster[p.ID] = p
	s.turnOrder = append(s.turnOrder, p.ID)
	s.emptySince = time.Time{}
}

// removeParticipant drops the participant from both the roster and the turn
// order, keeping the permutation invariant. Unknown ids are a no-op.
func (s *Session) removeParticipant(participantID string) bool {
	if _, ok := s.roster[participantID]; !ok {
		return false
	}
	delete(s.roster, participantID)
	s.turnOrder = slices.DeleteFunc(s.turnOrder, func(id string) bool {
		return id == participantID
	})
	if len(s.roster) == 0 {
		s.emptySince = time.Now()
	}
	return true
}

// players returns a roster snapshot ordered by turn order.
func (s *Session) players() []PlayerData {
	return lo.FilterMap(s.turnOrder, func(id string, _ int) (PlayerData, bool) {
		p, ok := s.roster[id]
		if !ok {
			return PlayerData{}, false
		}
		return p.data(), true
	})
}

// guesser returns the current guesser, the tail of the turn order: the
// round engine re-appends the guesser there when a round starts.
func (s *Session) guesser() *Participant {
	if len(s.turnOrder) == 0 {
		return nil
	}
	return s.roster[s.turnOrder[len(s.turnOrder)-1]]
}

// broadcast enqueues an event to every roster participant except those in
// skip.
func (s *Session) broadcast(ev Event, skip ...string) {
	for id, p := range s.roster {
		if slices.Contains(skip, id) {
			continue
		}
		p.send(ev)
	}
}

// clearHints resets every participant's hint at the start of a round.
func (s *Session) clearHints() {
	for _, p := range s.roster {
		p.hint = nil
	}
}

// hintCount is the number of participants with a submitted hint this round.
func (s *Session) hintCount() int {
	return lo.CountBy(lo.Values(s.roster), func(p *Participant) bool {
		return p.hint != nil
	})
}
