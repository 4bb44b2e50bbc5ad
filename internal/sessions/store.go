package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"tripplanner/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds one user's form lifecycle: the last submitted request and
// the last generated itinerary, until overwritten or reset.
type Session struct {
	ID        string
	State     models.SessionState
	Request   *models.TripRequest
	Itinerary *models.Itinerary
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store keeps sessions in memory keyed by ID. Sessions exist for the
// lifetime of the process; reset clears content but keeps the ID so the
// cookie stays valid.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	secret   []byte
	maxIdle  time.Duration
}

const defaultMaxIdle = 12 * time.Hour

func NewStore(secret string) *Store {
	return &Store{
		sessions: map[string]*Session{},
		secret:   []byte(secret),
		maxIdle:  defaultMaxIdle,
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// Create registers a fresh Idle session and returns it with a signed token
// for the cookie.
func (s *Store) Create() (*Session, string, error) {
	now := time.Now()
	sess := &Session{
		ID:        newSessionID(),
		State:     models.StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	token, err := s.signToken(sess.ID, now)
	if err != nil {
		return nil, "", err
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.pruneLocked(now)
	s.mu.Unlock()

	return sess, token, nil
}

// Lookup resolves a cookie token back to its live session. Unknown or
// expired tokens return nil so the caller starts a fresh session.
func (s *Store) Lookup(token string) *Session {
	id, ok := s.parseToken(token)
	if !ok {
		return nil
	}

	s.mu.RLock()
	sess := s.sessions[id]
	s.mu.RUnlock()
	return sess
}

// Mutate runs fn while holding the store lock and stamps UpdatedAt.
// The interaction model is request-at-a-time per user, but nothing stops
// two tabs from sharing one cookie.
func (s *Store) Mutate(sess *Session, fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(sess)
	sess.UpdatedAt = time.Now()
}

// Snapshot returns a copy of the mutable fields for handlers to read
// without holding the lock.
func (s *Store) Snapshot(sess *Session) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *sess
}

func (s *Store) pruneLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.UpdatedAt) > s.maxIdle {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) signToken(sessionID string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"iat":        now.Unix(),
		"exp":        now.Add(s.maxIdle).Unix(),
	})
	return token.SignedString(s.secret)
}

func (s *Store) parseToken(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	id, _ := claims["session_id"].(string)
	return id, id != ""
}
