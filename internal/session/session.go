// Package session holds the per-user admin panel state machine.
//
// Sessions live in process memory only; a restart logs every admin out, which
// is acceptable because re-authentication is cheap. The only durable effects
// of an admin session are the roster and password mutations it performs
// through the storage layer.
package session

import (
	"strconv"
	"strings"
	"sync"
)

// Login is the fixed panel login. Only the password is configurable.
const Login = "admin"

// State is the admin conversation position. Data-entry states return to
// StateAuthorized after each action; logout drops the session entirely.
type State int

const (
	StateAnonymous State = iota
	StateAwaitingLogin
	StateAwaitingPassword
	StateAuthorized
	StateAwaitingAddDoctor
	StateAwaitingRemoveDoctor
	StateAwaitingNewPassword
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAwaitingLogin:
		return "awaiting_login"
	case StateAwaitingPassword:
		return "awaiting_password"
	case StateAuthorized:
		return "authorized"
	case StateAwaitingAddDoctor:
		return "awaiting_add_doctor"
	case StateAwaitingRemoveDoctor:
		return "awaiting_remove_doctor"
	case StateAwaitingNewPassword:
		return "awaiting_new_password"
	}
	return "unknown"
}

// Session is one user's admin conversation. PanelMessages collects the IDs of
// bot messages sent inside the panel so logout can clear them from the chat.
type Session struct {
	State         State
	PanelMessages []int
}

// Authorized reports whether the session has passed login and password.
func (s *Session) Authorized() bool {
	return s.State >= StateAuthorized
}

// SubmitLogin consumes a login attempt in StateAwaitingLogin. A mismatch
// keeps the state unchanged; retries are unbounded.
func (s *Session) SubmitLogin(input string) bool {
	if s.State != StateAwaitingLogin {
		return false
	}
	if strings.TrimSpace(input) != Login {
		return false
	}
	s.State = StateAwaitingPassword
	return true
}

// SubmitPassword consumes a password attempt in StateAwaitingPassword,
// comparing against the currently stored panel password.
func (s *Session) SubmitPassword(input, stored string) bool {
	if s.State != StateAwaitingPassword {
		return false
	}
	if strings.TrimSpace(input) != stored {
		return false
	}
	s.State = StateAuthorized
	return true
}

// Begin moves an authorized session into a data-entry state.
func (s *Session) Begin(target State) bool {
	if !s.Authorized() {
		return false
	}
	switch target {
	case StateAwaitingAddDoctor, StateAwaitingRemoveDoctor, StateAwaitingNewPassword:
		s.State = target
		return true
	}
	return false
}

// FinishAction returns a data-entry session to the authorized panel.
func (s *Session) FinishAction() {
	if s.State > StateAuthorized {
		s.State = StateAuthorized
	}
}

// TrackPanelMessage records a bot message sent within the panel.
func (s *Session) TrackPanelMessage(messageID int) {
	s.PanelMessages = append(s.PanelMessages, messageID)
}

// DrainPanelMessages returns and clears the tracked panel messages.
func (s *Session) DrainPanelMessages() []int {
	ids := s.PanelMessages
	s.PanelMessages = nil
	return ids
}

// Store maps user IDs to their admin sessions. Updates run on the single
// event-processing goroutine; the mutex only guards against future callers.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the session for a user, creating an anonymous one on first use.
func (st *Store) Get(userID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	if !ok {
		s = &Session{State: StateAnonymous}
		st.sessions[userID] = s
	}
	return s
}

// Peek returns the session without creating one.
func (st *Store) Peek(userID int64) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	return s, ok
}

// Delete removes all session state for a user; used on logout.
func (st *Store) Delete(userID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}

// ParseIdentity extracts a numeric user ID from data-entry text, with or
// without the "ID:" marker prefix.
func ParseIdentity(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, "ID:"); ok {
		text = strings.TrimSpace(rest)
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParsePassword extracts a new panel password from data-entry text, with or
// without the "parol:" marker prefix. Passwords shorter than three characters
// are rejected.
func ParsePassword(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(text, "parol:"); ok {
		text = strings.TrimSpace(rest)
	}
	if len([]rune(text)) < 3 {
		return "", false
	}
	return text, true
}
