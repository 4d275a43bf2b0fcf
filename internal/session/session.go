package session

import "github.com/spec-kit/campus-helpdesk/internal/domain"

// Session holds the single currently authenticated identity. It is a plain
// value injected into the page layer rather than a package-level global, so a
// future multi-session runtime only needs one Session per connection.
type Session struct {
	currentUser *domain.User
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// CurrentUser returns the authenticated user, or nil when logged out.
func (s *Session) CurrentUser() *domain.User {
	return s.currentUser
}

// SetCurrentUser overwrites the single session slot.
func (s *Session) SetCurrentUser(user *domain.User) {
	s.currentUser = user
}

// Logout clears the session.
func (s *Session) Logout() {
	s.currentUser = nil
}

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool {
	return s.currentUser != nil
}
