package http

import (
	"time"

	"golang-stock-dashboard/internal/dashboard/service"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const flashCookie = "dashboard_flash"

// FlashStore keeps one-shot notices across a redirect. Entries are read
// at most once and expire after the configured TTL.
type FlashStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewFlashStore creates a FlashStore. A non-positive ttl defaults to one
// minute.
func NewFlashStore(ttl time.Duration) *FlashStore {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &FlashStore{cache: cache.New(ttl, 2*ttl), ttl: ttl}
}

// Put stores msg and returns the key to hand to the browser.
func (s *FlashStore) Put(msg service.Message) string {
	key := uuid.NewString()
	s.cache.Set(key, msg, cache.DefaultExpiration)
	return key
}

// Pop returns the notice stored under key and forgets it.
func (s *FlashStore) Pop(key string) (*service.Message, bool) {
	if _, err := uuid.Parse(key); err != nil {
		return nil, false
	}

	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	s.cache.Delete(key)

	msg, ok := v.(service.Message)
	if !ok {
		return nil, false
	}
	return &msg, true
}

// TTL is how long an unread notice is kept.
func (s *FlashStore) TTL() time.Duration {
	return s.ttl
}
