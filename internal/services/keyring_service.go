package services

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/99designs/keyring"

	"camerakitsample/internal/debug"
	"camerakitsample/internal/utils"
)

const serviceName = "camerakitsample"

// OpenKeyring opens the keyring backend selected in cfg.
func OpenKeyring(cfg utils.Config) (keyring.Keyring, error) {
	var allowed []keyring.BackendType
	switch cfg.KeyringBackend {
	case utils.KeyringMemory:
		return keyring.NewArrayKeyring(nil), nil
	case utils.KeyringFile:
		allowed = []keyring.BackendType{keyring.FileBackend}
	case utils.KeyringAuto, "":
	default:
		return nil, fmt.Errorf("unknown keyring backend %q", cfg.KeyringBackend)
	}

	var passwordFunc keyring.PromptFunc = keyring.TerminalPrompt
	if cfg.KeyringPassword != "" {
		passwordFunc = keyring.FixedStringPrompt(cfg.KeyringPassword)
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:             serviceName,
		AllowedBackends:         allowed,
		FileDir:                 cfg.KeyringDir,
		FilePasswordFunc:        passwordFunc,
		KeychainName:            "login",
		LibSecretCollectionName: "login",
		KWalletAppID:            serviceName,
		KWalletFolder:           serviceName,
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

// KeyringService keeps secret keys in the keyring and hands every other key to
// the wrapped defaults.
type KeyringService struct {
	ring       keyring.Keyring
	fallback   debug.Defaults
	secureKeys []string
}

// NewKeyringService routes the API token key to ring unless secureKeys are
// given explicitly.
func NewKeyringService(ring keyring.Keyring, fallback debug.Defaults, secureKeys ...string) *KeyringService {
	if len(secureKeys) == 0 {
		secureKeys = []string{debug.APITokenDefaultsKey}
	}
	return &KeyringService{ring: ring, fallback: fallback, secureKeys: secureKeys}
}

func (s *KeyringService) isSecure(key string) bool {
	return slices.Contains(s.secureKeys, key)
}

func (s *KeyringService) String(key string) (string, bool, error) {
	if !s.isSecure(key) {
		return s.fallback.String(key)
	}
	item, err := s.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("keyring get %s: %w", key, err)
	}
	return string(item.Data), true, nil
}

func (s *KeyringService) SetString(key, value string) error {
	if !s.isSecure(key) {
		return s.fallback.SetString(key, value)
	}
	err := s.ring.Set(keyring.Item{
		Key:         key,
		Data:        []byte(value),
		Label:       "CameraKit API token",
		Description: "API token used by the CameraKit sample",
	})
	if err != nil {
		return fmt.Errorf("keyring set %s: %w", key, err)
	}
	return nil
}

// Strings is never secure; lists always go to the wrapped defaults.
func (s *KeyringService) Strings(key string) ([]string, bool, error) {
	return s.fallback.Strings(key)
}

func (s *KeyringService) SetStrings(key string, values []string) error {
	return s.fallback.SetStrings(key, values)
}

// Remove deletes key from wherever it is stored. A key that was never written
// is not an error; the file backend reports that as a missing file.
func (s *KeyringService) Remove(key string) error {
	if !s.isSecure(key) {
		return s.fallback.Remove(key)
	}
	err := s.ring.Remove(key)
	if errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("keyring remove %s: %w", key, err)
	}
	return nil
}
