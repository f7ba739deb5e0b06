package main

import (
	"errors"
	"log"
	"time"
)

// Session-scoped actions referencing state that no longer exists resolve to
// one of these; the dispatch layer logs and drops the action rather than
// failing the connection.
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNoRound             = errors.New("no round in progress")
)

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}
