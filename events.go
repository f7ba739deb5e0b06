package main

import "encoding/json"

// Event is the outbound wire envelope. Every message pushed to a
// participant's mailbox is one of these.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// PlayerData identifies one participant to clients. Used as the payload of
// "join" and "your_data", and as the element type of "other_players".
type PlayerData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type NewGamePayload struct {
	ID string `json:"id"`
}

type QuitPayload struct {
	ID string `json:"id"`
}

// NewRoundPayload carries the role assignment for a round. The guesser
// variant has only the role; hinters additionally learn the word and who is
// guessing.
type NewRoundPayload struct {
	Role    string `json:"role"`
	Word    string `json:"word,omitempty"`
	Guesser string `json:"guesser,omitempty"`
}

type HintReceivedPayload struct {
	Client string `json:"client"`
}

// Hint pairs a submitter with their hint text.
type Hint struct {
	Client string `json:"client"`
	Hint   string `json:"hint"`
}

// AllHintsPayload is the full breakdown sent to hinters once every hint is
// in: duplicated hints with their text, plus the surviving unique hints.
type AllHintsPayload struct {
	Duplicates []Hint `json:"duplicates"`
	Hints      []Hint `json:"hints"`
}

// AllHintsToGuesserPayload is the redacted breakdown for the guesser: unique
// hints in full, but duplicate submitters by id only, so eliminated hint
// text is never revealed before the guess.
type AllHintsToGuesserPayload struct {
	Hints               []Hint   `json:"hints"`
	UsersWithDuplicates []string `json:"usersWithDuplicates"`
}

type GuessResultPayload struct {
	Result string `json:"result"`
	Word   string `json:"word"`
	Guess  string `json:"guess"`
}

const (
	resultCorrect   = "correct"
	resultIncorrect = "incorrect"

	roleGuesser = "guesser"
	roleHinter  = "hinter"
)

// Inbound actions arrive as single-key JSON objects with no discriminator
// ({"hint": "..."}, {"skip_word": true}, ...). decodeAction resolves the
// union once, at the protocol boundary, into one of the closed action types
// below.
type action interface {
	isAction()
}

type startRoundAction struct{}

type skipWordAction struct{}

type hintAction struct {
	text string
}

type guessAction struct {
	text string
}

func (startRoundAction) isAction() {}
func (skipWordAction) isAction()   {}
func (hintAction) isAction()       {}
func (guessAction) isAction()      {}

type actionFrame struct {
	StartNextRound *bool   `json:"start_next_round"`
	SkipWord       *bool   `json:"skip_word"`
	Hint           *string `json:"hint"`
	Guess          *string `json:"guess"`
}

// decodeAction parses one inbound text frame. A nil action with a nil error
// means the frame was well-formed JSON but matched no known action shape;
// callers drop it.
func decodeAction(data []byte) (action, error) {
	var frame actionFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, err
	}

	switch {
	case frame.StartNextRound != nil:
		return startRoundAction{}, nil
	case frame.SkipWord != nil:
		return skipWordAction{}, nil
	case frame.Hint != nil:
		return hintAction{text: *frame.Hint}, nil
	case frame.Guess != nil:
		return guessAction{text: *frame.Guess}, nil
	default:
		return nil, nil
	}
}
