package console

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/seafortlabs/seafort/internal/console/identity"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// sessionRefreshWindow is how close to expiry a session gets before the
// next request attempts a token refresh.
const sessionRefreshWindow = 2 * time.Minute

// session holds data for an authenticated console session. Tokens stay
// server-side; the browser only carries the opaque session ID.
type session struct {
	accessToken  string
	refreshToken string
	user         identity.UserDisplay
	orgSlugs     []string
	expiresAt    time.Time
}

// memberOf reports whether the session's user belongs to the org slug.
func (s *session) memberOf(slug string) bool {
	for _, candidate := range s.orgSlugs {
		if candidate == slug {
			return true
		}
	}
	return false
}

// sessionStore is a thread-safe in-memory session store.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// newSessionStore creates an empty session store.
func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*session)}
}

// create stores a new session and returns its ID.
func (s *sessionStore) create(sess *session) string {
	id := randomHex(16)
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id
}

// get returns a snapshot of the session, or nil if missing or expired.
// Callers own the snapshot; writes to the stored session go through update.
func (s *sessionStore) get(id string) *session {
	s.mu.RLock()
	stored, ok := s.sessions[id]
	var snapshot session
	if ok {
		snapshot = *stored
	}
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if timeNow().After(snapshot.expiresAt) {
		s.delete(id)
		return nil
	}
	return &snapshot
}

// update applies fn to the stored session under the write lock.
func (s *sessionStore) update(id string, fn func(*session)) {
	s.mu.Lock()
	if stored, ok := s.sessions[id]; ok {
		fn(stored)
	}
	s.mu.Unlock()
}

// delete removes a session by ID.
func (s *sessionStore) delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func randomHex(byteLen int) string {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failures are not recoverable at this layer.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
