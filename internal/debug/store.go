// Package debug holds the debug settings of the sample app: the API token and
// the lens group IDs. Values are seeded from persisted defaults or from the
// bundled app info, written through to defaults on every change and pushed to
// subscribers.
package debug

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"sync"
)

// Persistence keys.
const (
	APITokenDefaultsKey     = "com.snap.camerakit.sample.apiTokenKey"
	LensGroupIDsDefaultsKey = "com.snap.camerakit.sample.lensGroupIDsKey"
)

// PlaceholderAPIToken is the value shipped in the bundled info until a real
// token is configured.
const PlaceholderAPIToken = "REPLACE-THIS-WITH-YOUR-OWN-APP-SPECIFIC-VALUE"

// BundledGroupID is the lens group shipped inside the app. It is always part of
// group lists set through a deep link.
const BundledGroupID = "bundled"

var (
	ErrPlaceholderToken = errors.New("please specify API token in Info.yaml (SCCameraKitAPIToken)")
	ErrMissingToken     = errors.New("bundled info has no API token (SCCameraKitAPIToken)")
)

// Defaults is the key-value store settings are persisted to.
type Defaults interface {
	String(key string) (string, bool, error)
	SetString(key, value string) error
	Strings(key string) ([]string, bool, error)
	SetStrings(key string, values []string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}

// TokenSource provides the bundled API token.
type TokenSource interface {
	APIToken() (string, bool)
}

// Settings is a snapshot of the store.
type Settings struct {
	APIToken string   `json:"apiToken"`
	GroupIDs []string `json:"groupIDs"`
}

type Option func(*Store)

// WithExit replaces the function called after the API token changed through a
// deep link. Defaults to os.Exit.
func WithExit(exit func(code int)) Option {
	return func(s *Store) { s.exit = exit }
}

// WithBundledGroup overrides the group ID added to deep-linked group lists.
func WithBundledGroup(id string) Option {
	return func(s *Store) { s.bundledGroup = id }
}

// WithLogger sets the function used for diagnostics. Defaults to log.Printf.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(s *Store) { s.logf = logf }
}

type subscriber struct {
	id int
	fn func(Settings)
}

// Store owns the debug settings. It is safe for concurrent use, but all
// mutations are expected to come from a single logical owner.
type Store struct {
	// writeMu serializes writers through publish so subscribers see changes
	// in the order they were applied. Taken before mu.
	writeMu sync.Mutex

	mu       sync.Mutex
	apiToken string
	groupIDs []string

	defaultToken    string
	defaultGroupIDs []string
	defaults        Defaults

	subsMu sync.Mutex
	subs   []subscriber
	nextID int

	bundledGroup string
	exit         func(int)
	logf         func(string, ...any)
}

// New builds a store seeded from defaults, falling back to the bundled token
// and defaultGroupIDs. It fails when the bundled token is missing or still the
// placeholder; callers are expected to abort in that case.
func New(defaultGroupIDs []string, info TokenSource, defaults Defaults, opts ...Option) (*Store, error) {
	bundledToken, ok := info.APIToken()
	if !ok {
		return nil, ErrMissingToken
	}
	if bundledToken == PlaceholderAPIToken {
		return nil, ErrPlaceholderToken
	}

	s := &Store{
		defaultToken:    bundledToken,
		defaultGroupIDs: slices.Clone(defaultGroupIDs),
		defaults:        defaults,
		bundledGroup:    BundledGroupID,
		exit:            os.Exit,
		logf:            log.Printf,
	}
	for _, opt := range opts {
		opt(s)
	}

	token, found, err := defaults.String(APITokenDefaultsKey)
	if err != nil {
		return nil, fmt.Errorf("read api token: %w", err)
	}
	if !found {
		token = bundledToken
	}

	groups, found, err := defaults.Strings(LensGroupIDsDefaultsKey)
	if err != nil {
		return nil, fmt.Errorf("read lens group ids: %w", err)
	}
	if !found {
		groups = slices.Clone(defaultGroupIDs)
	}

	s.apiToken = token
	s.groupIDs = groups

	if err := defaults.SetString(APITokenDefaultsKey, token); err != nil {
		return nil, fmt.Errorf("persist api token: %w", err)
	}
	if err := defaults.SetStrings(LensGroupIDsDefaultsKey, groups); err != nil {
		return nil, fmt.Errorf("persist lens group ids: %w", err)
	}
	return s, nil
}

func (s *Store) APIToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiToken
}

// GroupIDs returns a copy of the current group IDs.
func (s *Store) GroupIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.groupIDs)
}

func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// SetAPIToken updates the token, persists it and notifies subscribers. The
// in-memory value changes even when persisting fails.
func (s *Store) SetAPIToken(token string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.apiToken = token
	err := s.defaults.SetString(APITokenDefaultsKey, token)
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
	if err != nil {
		s.logf("debug: failed to persist api token: %v", err)
		return fmt.Errorf("persist api token: %w", err)
	}
	return nil
}

// SetGroupIDs updates the group IDs, persists them and notifies subscribers.
func (s *Store) SetGroupIDs(ids []string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.groupIDs = slices.Clone(ids)
	err := s.defaults.SetStrings(LensGroupIDsDefaultsKey, s.groupIDs)
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
	if err != nil {
		s.logf("debug: failed to persist lens group ids: %v", err)
		return fmt.Errorf("persist lens group ids: %w", err)
	}
	return nil
}

// Reset drops both persisted values and restores the bundled token and the
// default group IDs in memory. The next launch seeds from the same fallbacks.
func (s *Store) Reset() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	err := errors.Join(
		s.defaults.Remove(APITokenDefaultsKey),
		s.defaults.Remove(LensGroupIDsDefaultsKey),
	)
	s.apiToken = s.defaultToken
	s.groupIDs = slices.Clone(s.defaultGroupIDs)
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
	if err != nil {
		s.logf("debug: failed to clear persisted settings: %v", err)
		return fmt.Errorf("clear persisted settings: %w", err)
	}
	return nil
}

// Subscribe calls fn with the current settings and again after every change.
// The returned function removes the subscription and may be called repeatedly.
// fn runs while writers are blocked and must not change the store itself.
func (s *Store) Subscribe(fn func(Settings)) (cancel func()) {
	s.writeMu.Lock()
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.subsMu.Unlock()

	fn(s.Settings())
	s.writeMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			defer s.subsMu.Unlock()
			s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
		})
	}
}

func (s *Store) publish(snap Settings) {
	s.subsMu.Lock()
	subs := slices.Clone(s.subs)
	s.subsMu.Unlock()

	for _, sub := range subs {
		sub.fn(Settings{APIToken: snap.APIToken, GroupIDs: slices.Clone(snap.GroupIDs)})
	}
}

// snapshot must be called with mu held.
func (s *Store) snapshot() Settings {
	return Settings{APIToken: s.apiToken, GroupIDs: slices.Clone(s.groupIDs)}
}
