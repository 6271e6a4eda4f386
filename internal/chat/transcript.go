// Package chat holds the per-user conversation transcript. The transcript is
// the source of truth for the rendered conversation; templates are a pure
// projection of it.
package chat

import (
	"sync"
	"time"

	"studybuddy-web-go/internal/models"
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// ErrorReply is appended as a bot turn when a send fails. Failures stay
// in-band: the transcript is the single channel for conversation feedback.
const ErrorReply = "Sorry, I encountered an error. Please try again."

// maxTurns bounds a single owner's transcript. Owners who walk away without
// logging out would otherwise accumulate turns for the life of the process.
const maxTurns = 200

type Message struct {
	Role   Role
	Text   string
	SentAt time.Time
}

// TranscriptStore keeps an ordered message sequence per user. It is the only
// state shared across requests and is safe for concurrent handlers.
type TranscriptStore struct {
	mu     sync.RWMutex
	turns  map[string][]Message
	loaded map[string]bool
}

func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{
		turns:  map[string][]Message{},
		loaded: map[string]bool{},
	}
}

func (s *TranscriptStore) Append(owner string, msg Message) {
	if msg.SentAt.IsZero() {
		msg.SentAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := append(s.turns[owner], msg)
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}
	s.turns[owner] = turns
}

// Replace rebuilds the transcript from upstream history, oldest first. It
// marks the transcript loaded even when the history is empty, so the rebuild
// happens once per sign-in.
func (s *TranscriptStore) Replace(owner string, history []models.ChatExchange) {
	now := time.Now()
	turns := make([]Message, 0, len(history)*2)
	for _, exchange := range history {
		turns = append(turns,
			Message{Role: RoleUser, Text: exchange.Message, SentAt: now},
			Message{Role: RoleBot, Text: exchange.Response, SentAt: now},
		)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[owner] = turns
	s.loaded[owner] = true
}

func (s *TranscriptStore) Loaded(owner string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded[owner]
}

// Messages returns a copy of the transcript in order.
func (s *TranscriptStore) Messages(owner string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := make([]Message, len(s.turns[owner]))
	copy(turns, s.turns[owner])
	return turns
}

func (s *TranscriptStore) Clear(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.turns, owner)
	delete(s.loaded, owner)
}
