package session

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/stockdesk/internal/common"
	"github.com/dmitrijs2005/stockdesk/internal/jwtx"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// ExpiringSoonWindow is how close to expiry a token counts as expiring soon.
const ExpiringSoonWindow = 5 * time.Minute

type Store struct {
	storage Storage
	codec   *jwtx.Codec
	log     logging.Logger

	mu            sync.Mutex
	token         string
	authenticated bool
	profile       *Profile

	subMu  sync.Mutex
	subs   map[int]func(Event)
	nextID int
}

// New restores the session persisted in storage. A missing or unreadable
// token yields Unauthenticated; an expired one is also removed from storage.
func New(ctx context.Context, storage Storage, codec *jwtx.Codec, log logging.Logger) *Store {
	s := &Store{
		storage: storage,
		codec:   codec,
		log:     log.With("component", "session"),
		subs:    make(map[int]func(Event)),
	}

	tok, err := storage.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "cannot restore session", "error", err)
		return s
	}
	if tok == "" {
		return s
	}

	if codec.IsExpired(tok) {
		s.log.Warn(ctx, "stored token expired, starting signed out")
		if err := storage.Clear(ctx); err != nil {
			s.log.Error(ctx, "cannot clear stored token", "error", err)
		}
		return s
	}

	s.token = tok
	s.authenticated = true
	s.profile = s.profileOf(tok)
	return s
}

func (s *Store) profileOf(token string) *Profile {
	claims, ok := s.codec.Decode(token)
	if !ok {
		return nil
	}
	return &Profile{
		ID:    int64(claims.Subject),
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}
}

// SetAuthenticatedUser installs a freshly issued token. An already expired
// token signs the user out instead and returns common.ErrTokenExpired.
func (s *Store) SetAuthenticatedUser(ctx context.Context, token string) error {
	if s.codec.IsExpired(token) {
		s.log.Warn(ctx, "received expired token, clearing session")
		s.signOut(ctx, EventExpired)
		return common.ErrTokenExpired
	}

	profile := s.profileOf(token)

	s.mu.Lock()
	if err := s.storage.Save(ctx, token); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist session: %w", err)
	}
	s.token = token
	s.authenticated = true
	s.profile = profile
	s.mu.Unlock()

	s.log.Info(ctx, "signed in", "user_id", profile.ID, "role", profile.Role)
	s.notify(Event{Type: EventLoggedIn, Profile: *profile})
	return nil
}

// Logout clears the session. Calling it while signed out is allowed and
// still notifies subscribers.
func (s *Store) Logout(ctx context.Context) {
	s.signOut(ctx, EventLoggedOut)
}

// IsTokenValid re-checks the held token against the clock. An expired token
// signs the user out before false is returned.
func (s *Store) IsTokenValid(ctx context.Context) bool {
	s.mu.Lock()
	tok, authed := s.token, s.authenticated
	s.mu.Unlock()

	if !authed || tok == "" {
		return false
	}
	if !s.codec.IsExpired(tok) {
		return true
	}

	if !s.signOutIf(ctx, tok, EventExpired) {
		// Replaced while it was being checked.
		return s.IsTokenValid(ctx)
	}
	s.log.Warn(ctx, "session token expired")
	return false
}

// IsTokenExpiringSoon reports whether the token is still valid but expires
// within ExpiringSoonWindow.
func (s *Store) IsTokenExpiringSoon() bool {
	left := s.TimeUntilExpiration()
	return left > 0 && left < ExpiringSoonWindow
}

// TimeUntilExpiration returns the remaining validity of the held token,
// 0 when expired and jwtx.Undecodable when there is no usable token.
func (s *Store) TimeUntilExpiration() time.Duration {
	tok := s.Token()
	if tok == "" {
		return jwtx.Undecodable
	}
	return s.codec.TimeUntilExpiration(tok)
}

func (s *Store) signOut(ctx context.Context, typ EventType) {
	s.endSession(ctx, typ, nil)
}

// signOutIf ends the session only while tok is still the held token.
func (s *Store) signOutIf(ctx context.Context, tok string, typ EventType) bool {
	return s.endSession(ctx, typ, &tok)
}

// endSession holds mu across the storage clear so a concurrent
// SetAuthenticatedUser cannot interleave with it.
func (s *Store) endSession(ctx context.Context, typ EventType, expect *string) bool {
	s.mu.Lock()
	if expect != nil && s.token != *expect {
		s.mu.Unlock()
		return false
	}
	wasAuthed := s.authenticated
	s.token = ""
	s.authenticated = false
	s.profile = nil
	err := s.storage.Clear(ctx)
	s.mu.Unlock()

	if err != nil {
		s.log.Error(ctx, "cannot clear stored token", "error", err)
	}
	if wasAuthed {
		s.log.Info(ctx, "signed out", "reason", typ.String())
	}

	s.notify(Event{Type: typ})
	return true
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) Profile() (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return Profile{}, false
	}
	return *s.profile, true
}

// DisplayName is the profile name or DefaultDisplayName.
func (s *Store) DisplayName() string {
	p, ok := s.Profile()
	if !ok || p.Name == "" {
		return DefaultDisplayName
	}
	return p.Name
}

func (s *Store) UserID() (int64, bool) {
	p, ok := s.Profile()
	if !ok || p.ID == 0 {
		return 0, false
	}
	return p.ID, true
}

func (s *Store) Role() string {
	p, _ := s.Profile()
	return p.Role
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{State: Unauthenticated, Token: s.token}
	if s.authenticated {
		snap.State = Authenticated
	}
	if s.profile != nil {
		p := *s.profile
		snap.Profile = &p
	}
	return snap
}

// Subscribe registers fn for every future event and returns a function that
// removes it. fn runs synchronously on the goroutine that changed the state.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	fns := make([]func(Event), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
