package services

import (
	"context"
	"errors"
	"strings"

	"camerakitsample/internal/appinfo"
	"camerakitsample/internal/debug"
	"camerakitsample/internal/deeplink"
	"camerakitsample/internal/events"
)

// DebugSettingsService is the frontend's view of the debug store.
type DebugSettingsService struct {
	store   *debug.Store
	info    appinfo.Info
	context context.Context
	cancel  func()
}

func NewDebugSettingsService(store *debug.Store, info appinfo.Info) *DebugSettingsService {
	return &DebugSettingsService{store: store, info: info, context: context.Background()}
}

// Startup pushes the current settings to the frontend now and after every
// change.
func (s *DebugSettingsService) Startup(ctx context.Context) {
	s.context = ctx
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = s.store.Subscribe(func(settings debug.Settings) {
		events.Emit(ctx, events.DebugSettingsChanged, settings)
	})
}

func (s *DebugSettingsService) Shutdown() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *DebugSettingsService) Get() debug.Settings {
	return s.store.Settings()
}

func (s *DebugSettingsService) GetAppInfo() appinfo.VersionInfo {
	return s.info.Summary()
}

func (s *DebugSettingsService) UpdateAPIToken(token string) (debug.Settings, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return debug.Settings{}, errors.New("api token is required")
	}
	if token == debug.PlaceholderAPIToken {
		return debug.Settings{}, errors.New("api token must not be the placeholder value")
	}
	if err := s.store.SetAPIToken(token); err != nil {
		return debug.Settings{}, err
	}
	return s.store.Settings(), nil
}

// UpdateGroupIDs trims the given IDs and drops empty ones. Order and
// duplicates are kept.
func (s *DebugSettingsService) UpdateGroupIDs(ids []string) (debug.Settings, error) {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			cleaned = append(cleaned, id)
		}
	}
	if len(cleaned) == 0 {
		return debug.Settings{}, errors.New("at least one group id is required")
	}
	if err := s.store.SetGroupIDs(cleaned); err != nil {
		return debug.Settings{}, err
	}
	return s.store.Settings(), nil
}

func (s *DebugSettingsService) Reset() (debug.Settings, error) {
	if err := s.store.Reset(); err != nil {
		return debug.Settings{}, err
	}
	return s.store.Settings(), nil
}

// OpenDeepLink applies link and reports the outcome to the frontend. Ignored
// links are not errors.
func (s *DebugSettingsService) OpenDeepLink(link string) (bool, error) {
	applied, err := s.store.ProcessDeepLink(link)

	var evt events.DebugEvent
	switch {
	case err != nil:
		evt = events.NewError("deep link failed: " + err.Error())
	case applied:
		evt = events.NewSuccess("deep link applied")
	default:
		evt = events.NewWarn("deep link ignored")
	}
	events.Emit(s.context, events.DebugDeepLink, evt.With("link", link))

	return applied, err
}

// HandleArgs applies every deep link found in args, in order. Used for launch
// arguments and for arguments forwarded by a second instance.
func (s *DebugSettingsService) HandleArgs(args []string) {
	for _, link := range deeplink.FromArgs(args) {
		if _, err := s.OpenDeepLink(link); err != nil {
			events.Logf("failed to apply deep link %s: %v", link, err)
		}
	}
}
