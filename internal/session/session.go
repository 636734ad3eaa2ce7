// Package session implements the mock sign-in used by the storefront.
//
// There is no backend and no credential verification: a login "succeeds"
// whenever the email is non-empty and the password is at least six
// characters. This is a placeholder identity, not a security boundary.
// The resulting session is mirrored to a file on disk so a restart stays
// signed in; removing the file is all logging out means.
package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// mockAvatar is the placeholder avatar every issued session gets.
const mockAvatar = "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150"

// userFile is the name of the persisted session record in the data dir.
const userFile = "user.json"

// Session is the locally-held record of who is signed in.
type Session struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// Store owns the (at most one) session. Login and Register simulate a
// network round trip; while one is in flight Loading reports true and
// further submissions are ignored rather than queued.
type Store struct {
	mu      sync.Mutex
	current *Session
	loading bool
	path    string
	delay   time.Duration
	log     *zap.Logger
}

// NewStore creates a session store persisting under dataDir and restores
// any previously mirrored session. A missing or malformed record is
// treated as signed out; restore never fails.
func NewStore(dataDir string, delay time.Duration, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		path:  filepath.Join(dataDir, userFile),
		delay: delay,
		log:   log,
	}
	s.restore()
	return s
}

// Current returns the signed-in session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Loading reports whether a Login or Register is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Login issues a session for the given credentials. It returns false on
// validation failure, if a submission is already in flight, or if ctx is
// cancelled during the simulated latency. No failure reason is
// distinguished; the caller shows generic feedback.
func (s *Store) Login(ctx context.Context, email, password string) (Session, bool) {
	if !s.begin() {
		return Session{}, false
	}
	defer s.end()

	if !s.wait(ctx) {
		return Session{}, false
	}
	if email == "" || len(password) < 6 {
		s.log.Debug("login rejected", zap.String("email", email))
		return Session{}, false
	}

	sess := Session{
		ID:     "1",
		Name:   localPart(email),
		Email:  email,
		Avatar: mockAvatar,
	}
	s.install(sess)
	return sess, true
}

// Register issues a session for a new account. The provided name is used
// directly, unlike Login which derives one from the email.
func (s *Store) Register(ctx context.Context, name, email, password string) (Session, bool) {
	if !s.begin() {
		return Session{}, false
	}
	defer s.end()

	if !s.wait(ctx) {
		return Session{}, false
	}
	if name == "" || email == "" || len(password) < 6 {
		s.log.Debug("registration rejected", zap.String("email", email))
		return Session{}, false
	}

	sess := Session{
		ID:     "1",
		Name:   name,
		Email:  email,
		Avatar: mockAvatar,
	}
	s.install(sess)
	return sess, true
}

// Logout clears the session and deletes the on-disk mirror immediately.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("failed to remove session file", zap.Error(err))
	}
}

// begin marks a submission in flight; it returns false when one already is.
func (s *Store) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return false
	}
	s.loading = true
	return true
}

func (s *Store) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// wait simulates the network round trip. The delay carries no semantics
// and is zero in tests.
func (s *Store) wait(ctx context.Context) bool {
	if s.delay <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// install records the session and mirrors it to disk. Writes are
// fire-and-forget: a failed mirror is logged, never surfaced.
func (s *Store) install(sess Session) {
	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		s.log.Warn("failed to encode session", zap.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		s.log.Warn("failed to create data dir", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Warn("failed to write session file", zap.Error(err))
	}
}

// restore reads the mirrored session once at startup. Fail closed: any
// read or decode problem just means nobody is signed in.
func (s *Store) restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn("ignoring malformed session file", zap.Error(err))
		return
	}
	if sess.Email == "" {
		return
	}
	s.current = &sess
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
