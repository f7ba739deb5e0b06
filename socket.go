package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client couples one websocket connection to a participant's mailbox. The
// read pump parses inbound action frames and dispatches them against the
// registry; the write pump drains the mailbox into the connection, so game
// logic never waits on network writes.
type client struct {
	conn *websocket.Conn
	out  *mailbox

	sessionID     string
	participantID string
}

func serveCreateSocket(cfg *Config, reg *Registry) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		username, err := url.PathUnescape(ps.ByName("username"))
		if err != nil || username == "" {
			http.Error(w, "missing username", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		out := newMailbox()
		participant, session := reg.CreateSession(username, out)
		logf(cfg, "GAMES: %q created session %s", username, session.ID)

		c := &client{
			conn:          conn,
			out:           out,
			sessionID:     session.ID,
			participantID: participant.ID,
		}
		go c.writePump()
		c.readPump(cfg, reg)
	}
}

func serveJoinSocket(cfg *Config, reg *Registry) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sessionID := ps.ByName("gameid")
		username, err := url.PathUnescape(ps.ByName("username"))
		if err != nil || username == "" || sessionID == "" {
			http.Error(w, "missing game id or username", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		out := newMailbox()
		c := &client{conn: conn, out: out}

		// An unknown session id leaves the connection open but detached:
		// nothing is broadcast to it and its actions go nowhere.
		participant, err := reg.JoinSession(sessionID, username, out)
		if err != nil {
			logf(cfg, "GAMES: %q tried to join unknown session %s", username, sessionID)
		} else {
			c.sessionID = sessionID
			c.participantID = participant.ID
			logf(cfg, "GAMES: %q joined session %s", username, sessionID)
		}

		go c.writePump()
		c.readPump(cfg, reg)
	}
}

func (c *client) readPump(cfg *Config, reg *Registry) {
	defer func() {
		if c.sessionID != "" {
			reg.LeaveSession(c.sessionID, c.participantID)
		}
		c.out.close()
		_ = c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if c.sessionID == "" {
			continue
		}

		act, err := decodeAction(data)
		if err != nil {
			logf(cfg, "GAMES: Malformed frame from %s: %v", c.participantID, err)
			continue
		}
		if act == nil {
			logf(cfg, "GAMES: Unrecognized action from %s", c.participantID)
			continue
		}

		if err := c.dispatch(reg, act); err != nil {
			// Stale session or participant; the action no-ops.
			logf(cfg, "GAMES: Action from %s dropped: %v", c.participantID, err)
		}
	}
}

func (c *client) dispatch(reg *Registry, act action) error {
	switch a := act.(type) {
	case startRoundAction:
		return reg.StartRound(c.sessionID, true)
	case skipWordAction:
		return reg.StartRound(c.sessionID, false)
	case hintAction:
		return reg.SubmitHint(c.sessionID, c.participantID, a.text)
	case guessAction:
		return reg.SubmitGuess(c.sessionID, a.text)
	default:
		return nil
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for {
		for _, ev := range c.out.take() {
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		}

		select {
		case <-c.out.wake:
		case <-c.out.done:
			for _, ev := range c.out.take() {
				if err := c.conn.WriteJSON(ev); err != nil {
					return
				}
			}
			return
		}
	}
}
