package appinfo

import (
	_ "embed"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// Keys of the bundled info dictionary.
const (
	BuildKey    = "CFBundleVersion"
	VersionKey  = "CFBundleShortVersionString"
	APITokenKey = "SCCameraKitAPIToken"
	GroupIDKey  = "LensGroupId"
)

//go:embed Info.yaml
var bundledInfo []byte

// Info is a read-only view over the bundled info dictionary.
type Info struct {
	dict map[string]any
}

// VersionInfo is what the about panel shows.
type VersionInfo struct {
	Build   string `json:"build"`
	Version string `json:"version"`
}

// Bundled returns the info dictionary embedded in the binary. A malformed file
// yields an empty dictionary so every accessor reports absent.
func Bundled() Info {
	info, err := Parse(bundledInfo)
	if err != nil {
		log.Printf("appinfo: failed to parse bundled info: %v", err)
		return Info{}
	}
	return info
}

// Parse builds an Info from YAML bytes.
func Parse(data []byte) (Info, error) {
	dict := map[string]any{}
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return Info{}, fmt.Errorf("parse info dictionary: %w", err)
	}
	return Info{dict: dict}, nil
}

// FromMap wraps an in-memory dictionary.
func FromMap(m map[string]any) Info {
	return Info{dict: m}
}

func (i Info) Build() (string, bool) {
	return i.lookup(BuildKey)
}

func (i Info) Version() (string, bool) {
	return i.lookup(VersionKey)
}

func (i Info) APIToken() (string, bool) {
	return i.lookup(APITokenKey)
}

func (i Info) GroupID() (string, bool) {
	return i.lookup(GroupIDKey)
}

// Summary returns build and version, empty where absent.
func (i Info) Summary() VersionInfo {
	build, _ := i.Build()
	version, _ := i.Version()
	return VersionInfo{Build: build, Version: version}
}

// lookup reports a value only when it is present and a string.
func (i Info) lookup(key string) (string, bool) {
	if i.dict == nil {
		return "", false
	}
	s, ok := i.dict[key].(string)
	return s, ok
}
