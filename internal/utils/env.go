package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvDBPath          = "CAMERAKIT_DB_PATH"
	EnvKeyringBackend  = "CAMERAKIT_KEYRING_BACKEND"
	EnvKeyringDir      = "CAMERAKIT_KEYRING_DIR"
	EnvKeyringPassword = "CAMERAKIT_KEYRING_PASSWORD"
	EnvLensGroups      = "CAMERAKIT_LENS_GROUPS"
)

// Keyring backends accepted in CAMERAKIT_KEYRING_BACKEND.
const (
	KeyringAuto   = "auto"
	KeyringFile   = "file"
	KeyringMemory = "memory"
)

// Config holds runtime settings taken from the environment.
type Config struct {
	DBPath          string
	KeyringBackend  string
	KeyringDir      string
	KeyringPassword string
	// LensGroups is nil when the variable is unset.
	LensGroups []string
}

func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// LoadEnv loads the .env file at the project root. A missing file is not an
// error.
func LoadEnv() error {
	root, err := FindProjectRoot()
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	envPath := filepath.Join(root, ".env")
	if _, err := os.Stat(envPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(envPath)
}

// LoadConfig reads Config from the process environment.
func LoadConfig() Config {
	cfg := Config{
		DBPath:          os.Getenv(EnvDBPath),
		KeyringBackend:  strings.ToLower(strings.TrimSpace(os.Getenv(EnvKeyringBackend))),
		KeyringDir:      os.Getenv(EnvKeyringDir),
		KeyringPassword: os.Getenv(EnvKeyringPassword),
	}
	if cfg.KeyringBackend == "" {
		cfg.KeyringBackend = KeyringAuto
	}
	if cfg.KeyringDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.KeyringDir = filepath.Join(dir, "camerakitsample", "keyring")
		}
	}
	if groups, ok := os.LookupEnv(EnvLensGroups); ok {
		cfg.LensGroups = []string{}
		for _, g := range strings.Split(groups, ",") {
			if g = strings.TrimSpace(g); g != "" {
				cfg.LensGroups = append(cfg.LensGroups, g)
			}
		}
	}
	return cfg
}
