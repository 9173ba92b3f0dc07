package session

import "fmt"

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type EventType int

const (
	EventLoggedIn EventType = iota + 1
	EventLoggedOut
	EventExpired
)

func (t EventType) String() string {
	switch t {
	case EventLoggedIn:
		return "logged_in"
	case EventLoggedOut:
		return "logged_out"
	case EventExpired:
		return "expired"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is delivered to subscribers after a state change has been committed.
type Event struct {
	Type    EventType
	Profile Profile
}

// Profile is the user identity carried by the token.
type Profile struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// Snapshot is a consistent copy of the store's state.
type Snapshot struct {
	State   State
	Token   string
	Profile *Profile
}

// DefaultDisplayName is shown when the token carries no name.
const DefaultDisplayName = "Usuario"
