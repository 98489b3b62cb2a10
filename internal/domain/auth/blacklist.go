package auth

import (
	"sync"
	"time"
)

// Blacklist invalidates issued tokens until their natural expiry to support
// logout semantics. In-memory: a restart clears it, which is acceptable since
// tokens are short-lived.
type Blacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

func NewBlacklist() *Blacklist {
	return &Blacklist{entries: map[string]time.Time{}}
}

func (b *Blacklist) Add(token string, expiresAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[token] = expiresAt
}

func (b *Blacklist) Contains(token string) bool {
	b.mu.RLock()
	exp, ok := b.entries[token]
	b.mu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		b.mu.Lock()
		delete(b.entries, token)
		b.mu.Unlock()
		return false
	}
	return true
}

// Sweep drops expired entries. Callers run it periodically.
func (b *Blacklist) Sweep() {
	now := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()
	for token, exp := range b.entries {
		if now.After(exp) {
			delete(b.entries, token)
		}
	}
}
