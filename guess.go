package main

import "strings"

// SubmitGuess resolves a guess against the active word, case-insensitively,
// and announces the outcome to the whole roster. Any participant who never
// submitted a hint this round (in practice the guesser) also receives the
// full hint breakdown, so the guesser sees which hints were eliminated once
// the word is out. A guess ends nothing by itself; rotating into the next
// round takes an explicit start action.
func (r *Registry) SubmitGuess(sessionID, text string) error {
	return r.WithSession(sessionID, func(s *Session) error {
		if s.wordToGuess == "" {
			return ErrNoRound
		}

		result := resultIncorrect
		if strings.EqualFold(text, s.wordToGuess) {
			result = resultCorrect
		}

		s.broadcast(Event{Event: "guess_result", Payload: GuessResultPayload{
			Result: result,
			Word:   s.wordToGuess,
			Guess:  text,
		}})

		unique, duplicates, _ := s.classifyHints()
		payload := AllHintsPayload{Duplicates: duplicates, Hints: unique}
		for _, p := range s.roster {
			if p.hint == nil {
				p.send(Event{Event: "all_hints", Payload: payload})
			}
		}
		return nil
	})
}
