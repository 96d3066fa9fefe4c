package services

import (
	"context"

	"camerakitsample/internal/repositories"
)

// DefaultsService exposes the defaults repository under the context handed to
// Startup, so the debug store can persist without threading contexts through.
type DefaultsService struct {
	defaults repositories.DefaultsRepository
	context  context.Context
}

func NewDefaultsService(defaults repositories.DefaultsRepository) *DefaultsService {
	return &DefaultsService{defaults: defaults, context: context.Background()}
}

func (s *DefaultsService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *DefaultsService) String(key string) (string, bool, error) {
	return s.defaults.GetString(s.context, key)
}

func (s *DefaultsService) SetString(key, value string) error {
	return s.defaults.SetString(s.context, key, value)
}

func (s *DefaultsService) Strings(key string) ([]string, bool, error) {
	return s.defaults.GetStrings(s.context, key)
}

func (s *DefaultsService) SetStrings(key string, values []string) error {
	return s.defaults.SetStrings(s.context, key, values)
}

func (s *DefaultsService) Remove(key string) error {
	return s.defaults.Delete(s.context, key)
}
