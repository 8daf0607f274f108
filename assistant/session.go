package assistant

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"springshop/models"
)

// ErrSessionNotFound is returned by the registry for unknown session ids.
var ErrSessionNotFound = errors.New("assistant: session not found")

// Session is one long-lived conversation. The mutex serializes turns so the
// transcript has a total order even if two sends race; the transcript itself
// is append-only and lives only in memory.
type Session struct {
	mu        sync.Mutex
	transport Transport
	messages  []models.ChatMessage
	now       func() time.Time
}

// NewSession wraps a transport in a fresh session whose transcript starts with
// the fixed welcome message.
func NewSession(t Transport) *Session {
	s := &Session{transport: t, now: time.Now}
	s.messages = append(s.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      WelcomeText,
		Sender:    models.SenderAI,
		Timestamp: s.now(),
	})
	return s
}

// SendTurn records the user message, performs one blocking exchange with the
// provider and records and returns the reply. Provider failures never
// propagate: they become the fixed fallback apology, and an empty reply
// becomes the fixed couldn't-generate string.
func (s *Session) SendTurn(ctx context.Context, userText string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      userText,
		Sender:    models.SenderUser,
		Timestamp: s.now(),
	})

	text, err := s.transport.Send(ctx, userText)
	if err != nil {
		log.Printf("Error communicating with Gemini: %v", err)
		text = FallbackTransport
	} else if strings.TrimSpace(text) == "" {
		text = FallbackEmpty
	}

	reply := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    models.SenderAI,
		Timestamp: s.now(),
	}
	s.messages = append(s.messages, reply)
	return reply
}

// Transcript returns a copy of the session's messages in order.
func (s *Session) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Registry keys live sessions by id. Sessions are discarded with the process;
// there is no persistence and no eviction.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Add stores the session under a fresh id and returns the id.
func (r *Registry) Add(s *Session) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return id
}

// Get looks a session up by id.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
