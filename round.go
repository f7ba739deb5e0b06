package main

import "slices"

// StartRound begins a new round for the session: pick a word, assign the
// guesser, tell everyone their role, rotate the turn order, and reset the
// collected hints.
//
// With rollRoles the head of the turn order becomes guesser and rotates to
// the tail, so guesser duty cycles through the roster. Without it the tail
// (the previous round's guesser) keeps the role, which is how "skip word"
// swaps only the word. A one-participant session runs the same sequence;
// its sole member is guesser every round and there is nobody to send the
// hinter notifications to.
func (r *Registry) StartRound(sessionID string, rollRoles bool) error {
	return r.WithSession(sessionID, func(s *Session) error {
		s.wordToGuess = r.word()
		s.hintsShared = false

		if len(s.turnOrder) == 0 {
			return nil
		}

		idx := len(s.turnOrder) - 1
		if rollRoles {
			idx = 0
		}
		guesserID := s.turnOrder[idx]
		s.turnOrder = slices.Delete(s.turnOrder, idx, idx+1)

		guesser := s.roster[guesserID]
		guesser.send(Event{Event: "new_round", Payload: NewRoundPayload{Role: roleGuesser}})

		for _, id := range s.turnOrder {
			s.roster[id].send(Event{Event: "new_round", Payload: NewRoundPayload{
				Role:    roleHinter,
				Word:    s.wordToGuess,
				Guesser: guesserID,
			}})
		}

		s.turnOrder = append(s.turnOrder, guesserID)
		s.clearHints()
		return nil
	})
}
