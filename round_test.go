package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartRoundAssignsRolesAndRotates(t *testing.T) {
	reg := testRegistry("sauna")

	creator, creatorOut, sessionID := create(reg, "user1")
	second, secondOut := join(t, reg, sessionID, "user2")
	third, thirdOut := join(t, reg, sessionID, "user3")

	creatorOut.take()
	secondOut.take()
	thirdOut.take()

	require.Equal(t, []string{creator.ID, second.ID, third.ID}, turnOrder(t, reg, sessionID))
	require.NoError(t, reg.StartRound(sessionID, true))

	// Head of the turn order became guesser and moved to the tail.
	require.Equal(t, []string{second.ID, third.ID, creator.ID}, turnOrder(t, reg, sessionID))

	evs := creatorOut.take()
	require.Equal(t, []string{"new_round"}, eventNames(evs))
	require.Equal(t, NewRoundPayload{Role: roleGuesser}, payload[NewRoundPayload](t, evs[0]))

	for _, out := range []*mailbox{secondOut, thirdOut} {
		evs := out.take()
		require.Equal(t, []string{"new_round"}, eventNames(evs))
		require.Equal(t, NewRoundPayload{
			Role:    roleHinter,
			Word:    "sauna",
			Guesser: creator.ID,
		}, payload[NewRoundPayload](t, evs[0]))
	}
}

func TestSkipWordKeepsGuesser(t *testing.T) {
	reg := testRegistry("sauna")

	creator, creatorOut, sessionID := create(reg, "user1")
	second, secondOut := join(t, reg, sessionID, "user2")

	require.NoError(t, reg.StartRound(sessionID, true))
	require.NoError(t, reg.SubmitHint(sessionID, second.ID, "vihje"))

	creatorOut.take()
	secondOut.take()

	reg.setTestWord("talvi")
	require.NoError(t, reg.StartRound(sessionID, false))

	// Same guesser at the tail, new word, hints wiped.
	require.Equal(t, []string{second.ID, creator.ID}, turnOrder(t, reg, sessionID))

	evs := creatorOut.take()
	require.Equal(t, []string{"new_round"}, eventNames(evs))
	require.Equal(t, NewRoundPayload{Role: roleGuesser}, payload[NewRoundPayload](t, evs[0]))

	evs = secondOut.take()
	require.Equal(t, []string{"new_round"}, eventNames(evs))
	require.Equal(t, NewRoundPayload{
		Role:    roleHinter,
		Word:    "talvi",
		Guesser: creator.ID,
	}, payload[NewRoundPayload](t, evs[0]))

	require.NoError(t, reg.WithSession(sessionID, func(s *Session) error {
		require.Equal(t, "talvi", s.wordToGuess)
		require.Zero(t, s.hintCount())
		return nil
	}))
}

func TestStartRoundWithSoleParticipant(t *testing.T) {
	reg := testRegistry("sauna")

	creator, out, sessionID := create(reg, "user1")
	out.take()

	require.NoError(t, reg.StartRound(sessionID, true))

	evs := out.take()
	require.Equal(t, []string{"new_round"}, eventNames(evs))
	require.Equal(t, NewRoundPayload{Role: roleGuesser}, payload[NewRoundPayload](t, evs[0]))
	require.Equal(t, []string{creator.ID}, turnOrder(t, reg, sessionID))
}

func TestStartRoundUnknownSession(t *testing.T) {
	reg := testRegistry("sauna")

	require.ErrorIs(t, reg.StartRound("9999", true), ErrSessionNotFound)
}
