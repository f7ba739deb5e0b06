package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuessIsCaseInsensitive(t *testing.T) {
	reg := testRegistry("testisana")

	_, guesserOut, sessionID := create(reg, "user1")
	second, secondOut := join(t, reg, sessionID, "user2")

	require.NoError(t, reg.StartRound(sessionID, true))
	require.NoError(t, reg.SubmitHint(sessionID, second.ID, "vinkki"))

	guesserOut.take()
	secondOut.take()

	require.NoError(t, reg.SubmitGuess(sessionID, "TESTISANA"))

	want := GuessResultPayload{Result: resultCorrect, Word: "testisana", Guess: "TESTISANA"}

	evs := secondOut.take()
	require.Equal(t, []string{"guess_result"}, eventNames(evs))
	require.Equal(t, want, payload[GuessResultPayload](t, evs[0]))

	// The guesser never hinted, so the result is followed by the breakdown.
	evs = guesserOut.take()
	require.Equal(t, []string{"guess_result", "all_hints"}, eventNames(evs))
	require.Equal(t, want, payload[GuessResultPayload](t, evs[0]))
	require.Equal(t, AllHintsPayload{
		Hints: []Hint{{Client: second.ID, Hint: "vinkki"}},
	}, payload[AllHintsPayload](t, evs[1]))
}

func TestGuessIncorrect(t *testing.T) {
	reg := testRegistry("testisana")

	_, guesserOut, sessionID := create(reg, "user1")
	second, secondOut := join(t, reg, sessionID, "user2")

	require.NoError(t, reg.StartRound(sessionID, true))
	require.NoError(t, reg.SubmitHint(sessionID, second.ID, "vinkki"))

	guesserOut.take()
	secondOut.take()

	require.NoError(t, reg.SubmitGuess(sessionID, "väärä"))

	evs := secondOut.take()
	require.Equal(t, []string{"guess_result"}, eventNames(evs))
	require.Equal(t, GuessResultPayload{
		Result: resultIncorrect,
		Word:   "testisana",
		Guess:  "väärä",
	}, payload[GuessResultPayload](t, evs[0]))
}

func TestGuessResendsBreakdownOnlyToHintless(t *testing.T) {
	reg := testRegistry("testisana")

	_, guesserOut, sessionID := create(reg, "user1")
	second, secondOut := join(t, reg, sessionID, "user2")
	third, thirdOut := join(t, reg, sessionID, "user3")

	require.NoError(t, reg.StartRound(sessionID, true))
	require.NoError(t, reg.SubmitHint(sessionID, second.ID, "vinkki2"))
	require.NoError(t, reg.SubmitHint(sessionID, third.ID, "vinkki3"))

	// Completeness already shared the hints once; drain and guess.
	guesserOut.take()
	secondOut.take()
	thirdOut.take()

	require.NoError(t, reg.SubmitGuess(sessionID, "testisana"))

	require.Equal(t, []string{"guess_result", "all_hints"}, eventNames(guesserOut.take()))
	require.Equal(t, []string{"guess_result"}, eventNames(secondOut.take()))
	require.Equal(t, []string{"guess_result"}, eventNames(thirdOut.take()))
}

func TestGuessWithoutRound(t *testing.T) {
	reg := testRegistry("")

	_, _, sessionID := create(reg, "user1")

	require.ErrorIs(t, reg.SubmitGuess(sessionID, "arvaus"), ErrNoRound)
	require.ErrorIs(t, reg.SubmitGuess("9999", "arvaus"), ErrSessionNotFound)
}
