package service

import (
	"sync"
	"time"

	"matchpoint/pkg/model"

	"github.com/google/uuid"
)

type intentAction string

const (
	actionCreate intentAction = "create"
	actionJoin   intentAction = "join"
	actionCancel intentAction = "cancel"
)

// intent is a staged mutation awaiting explicit confirmation. Nothing in the
// booking store changes until the caller confirms the token.
type intent struct {
	Token     string
	Action    intentAction
	ActorID   string
	BookingID string
	Create    *model.CreateBookingRequest
	Location  *model.GeoLocation
	ExpiresAt time.Time
}

// intentStore holds staged intents with a TTL. Tokens are single-use: Take
// removes the intent, so a second confirmation of the same token fails.
type intentStore struct {
	mu      sync.Mutex
	intents map[string]*intent
	ttl     time.Duration
	stopCh  chan struct{}
}

func newIntentStore(ttl time.Duration) *intentStore {
	s := &intentStore{
		intents: make(map[string]*intent),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go s.cleanup()

	return s
}

// Put stages the intent and returns its single-use token.
func (s *intentStore) Put(i *intent) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	i.Token = uuid.New().String()
	i.ExpiresAt = time.Now().Add(s.ttl)
	s.intents[i.Token] = i
	return i.Token
}

// Take consumes the intent for the token. Unknown, expired and already
// consumed tokens all report false.
func (s *intentStore) Take(token string) (*intent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.intents[token]
	if !ok {
		return nil, false
	}
	delete(s.intents, token)

	if time.Now().After(i.ExpiresAt) {
		return nil, false
	}
	return i, true
}

func (s *intentStore) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for token, i := range s.intents {
				if now.After(i.ExpiresAt) {
					delete(s.intents, token)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

// Stop terminates the cleanup goroutine.
func (s *intentStore) Stop() {
	close(s.stopCh)
}
