package agent

import (
	"sync"
	"time"

	"book-summarizer/backend/internal/agent/deps"
	"book-summarizer/backend/internal/model"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// InMemoryTranscriptRepository keeps open chat transcripts in an expiring cache.
// Every append refreshes the transcript's expiration.
type InMemoryTranscriptRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewInMemoryTranscriptRepository creates a repository whose idle transcripts
// expire after ttl
func NewInMemoryTranscriptRepository(ttl time.Duration) *InMemoryTranscriptRepository {
	cleanup := ttl / 6
	if cleanup < time.Minute {
		cleanup = time.Minute
	}
	return &InMemoryTranscriptRepository{
		cache: cache.New(ttl, cleanup),
	}
}

// Open creates a transcript seeded with the assistant greeting
func (r *InMemoryTranscriptRepository) Open(summary model.BookSummary, greeting string) model.ChatTranscript {
	t := &model.ChatTranscript{
		ID:      uuid.New().String(),
		Summary: summary.Clone(),
		Messages: []model.ChatMessage{
			{Role: model.RoleAssistant, Content: greeting},
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Set(t.ID, t, cache.DefaultExpiration)
	return t.Clone()
}

// Get returns a copy of the transcript
func (r *InMemoryTranscriptRepository) Get(id string) (model.ChatTranscript, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.load(id)
	if !ok {
		return model.ChatTranscript{}, false
	}
	return t.Clone(), true
}

// Append adds messages to an open transcript
func (r *InMemoryTranscriptRepository) Append(id string, messages ...model.ChatMessage) (model.ChatTranscript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.load(id)
	if !ok {
		return model.ChatTranscript{}, deps.ErrTranscriptNotFound
	}
	t.Messages = append(t.Messages, messages...)
	r.cache.Set(id, t, cache.DefaultExpiration)
	return t.Clone(), nil
}

// Close removes the transcript and returns its final state
func (r *InMemoryTranscriptRepository) Close(id string) (model.ChatTranscript, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.load(id)
	if !ok {
		return model.ChatTranscript{}, false
	}
	r.cache.Delete(id)
	return t.Clone(), true
}

// Count returns the number of open transcripts, expired ones included until cleanup
func (r *InMemoryTranscriptRepository) Count() int {
	return r.cache.ItemCount()
}

func (r *InMemoryTranscriptRepository) load(id string) (*model.ChatTranscript, bool) {
	if x, found := r.cache.Get(id); found {
		return x.(*model.ChatTranscript), true
	}
	return nil, false
}
