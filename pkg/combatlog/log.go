package combatlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Log is the append-only record of one combat session. Events only ever
// accumulate; nothing rewrites or removes them.
type Log struct {
	sessionID string
	events    []Event
	sink      io.WriteCloser
	logger    *slog.Logger
}

// New creates an empty log for the session.
func New(sessionID string, logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{
		sessionID: sessionID,
		logger:    logger,
	}
}

// SessionID returns the session this log records.
func (l *Log) SessionID() string {
	return l.sessionID
}

// AttachFile mirrors every appended event to a plain-text file named after
// the session under dir.
func (l *Log) AttachFile(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create combat log dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("combat_%s.log", l.sessionID))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open combat log file: %w", err)
	}

	l.sink = f
	return nil
}

// Append stamps the event if needed and adds it to the log. A failing file
// sink is dropped rather than surfaced; the in-memory record is the source
// of truth and a disk problem must not stop the game.
func (l *Log) Append(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	l.events = append(l.events, e)

	if l.sink == nil {
		return
	}
	if _, err := fmt.Fprintln(l.sink, e.String()); err != nil {
		l.logger.Warn("disabling combat log file",
			"session_id", l.sessionID,
			"error", err.Error())
		_ = l.sink.Close()
		l.sink = nil
	}
}

// Events returns a copy of every event in append order.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	return len(l.events)
}

// Transcript renders the whole log as plain text, one event per line.
func (l *Log) Transcript() string {
	var sb strings.Builder
	for _, e := range l.events {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Close releases the file sink, if one is attached.
func (l *Log) Close() error {
	if l.sink == nil {
		return nil
	}
	err := l.sink.Close()
	l.sink = nil
	if err != nil {
		return fmt.Errorf("failed to close combat log file: %w", err)
	}
	return nil
}
