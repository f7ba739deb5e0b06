package main

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// SubmitHint records the participant's hint for the active round,
// overwriting any earlier submission, and tells everyone else (guesser
// included) that this participant has hinted, without revealing the text.
// When the last outstanding hint arrives the round's hints are classified
// and shared; that share happens at most once per round, so a hinter
// re-submitting afterwards does not trigger it again.
func (r *Registry) SubmitHint(sessionID, participantID, text string) error {
	return r.WithSession(sessionID, func(s *Session) error {
		p, ok := s.roster[participantID]
		if !ok {
			return ErrParticipantNotFound
		}
		p.hint = &text

		s.broadcast(Event{Event: "hint_received", Payload: HintReceivedPayload{Client: participantID}}, participantID)

		// Complete once everyone except the guesser has hinted.
		if s.hintsShared || s.hintCount() != len(s.roster)-1 {
			return nil
		}
		s.hintsShared = true
		s.shareHints()
		return nil
	})
}

// shareHints classifies the round's hints and delivers the breakdown: the
// guesser (tail of the turn order) gets unique hints plus the ids of
// duplicate submitters, every hinter gets both lists in full.
func (s *Session) shareHints() {
	unique, duplicates, duplicateIDs := s.classifyHints()

	if guesser := s.guesser(); guesser != nil {
		guesser.send(Event{Event: "all_hints_to_guesser", Payload: AllHintsToGuesserPayload{
			Hints:               unique,
			UsersWithDuplicates: duplicateIDs,
		}})
	}

	payload := AllHintsPayload{Duplicates: duplicates, Hints: unique}
	for _, id := range s.turnOrder[:max(len(s.turnOrder)-1, 0)] {
		s.roster[id].send(Event{Event: "all_hints", Payload: payload})
	}
}

// classifyHints groups the submitted hints by case-folded text. Groups of
// one are unique hints; everyone in a larger group is a duplicate
// submitter. All three lists are sorted by participant id so delivery is
// deterministic.
func (s *Session) classifyHints() (unique, duplicates []Hint, duplicateIDs []string) {
	submitted := lo.Filter(lo.Values(s.roster), func(p *Participant, _ int) bool {
		return p.hint != nil
	})
	groups := lo.GroupBy(submitted, func(p *Participant) string {
		return strings.ToLower(*p.hint)
	})

	for _, group := range groups {
		if len(group) == 1 {
			p := group[0]
			unique = append(unique, Hint{Client: p.ID, Hint: *p.hint})
			continue
		}
		for _, p := range group {
			duplicates = append(duplicates, Hint{Client: p.ID, Hint: *p.hint})
			duplicateIDs = append(duplicateIDs, p.ID)
		}
	}

	byClient := func(a, b Hint) int { return strings.Compare(a.Client, b.Client) }
	slices.SortFunc(unique, byClient)
	slices.SortFunc(duplicates, byClient)
	slices.Sort(duplicateIDs)

	return unique, duplicates, duplicateIDs
}
