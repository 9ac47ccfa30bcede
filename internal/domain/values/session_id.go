package values

import "github.com/google/uuid"

// SessionID identifies one run of the interactive menu.
// It only appears in log output.
type SessionID struct {
	value uuid.UUID
}

// NewSessionID creates a new random session ID
func NewSessionID() SessionID {
	return SessionID{value: uuid.New()}
}

// String returns the string representation
func (s SessionID) String() string {
	return s.value.String()
}
