package appinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ReturnsStringValues(t *testing.T) {
	info, err := Parse([]byte(`
CFBundleVersion: "42"
CFBundleShortVersionString: "2.3.1"
SCCameraKitAPIToken: "token-abc"
LensGroupId: "group-1"
`))
	require.NoError(t, err)

	build, ok := info.Build()
	assert.True(t, ok)
	assert.Equal(t, "42", build)

	version, ok := info.Version()
	assert.True(t, ok)
	assert.Equal(t, "2.3.1", version)

	token, ok := info.APIToken()
	assert.True(t, ok)
	assert.Equal(t, "token-abc", token)

	group, ok := info.GroupID()
	assert.True(t, ok)
	assert.Equal(t, "group-1", group)
}

func TestParse_NonStringValuesAreAbsent(t *testing.T) {
	info, err := Parse([]byte(`
CFBundleVersion: 42
CFBundleShortVersionString: true
LensGroupId: [a, b]
`))
	require.NoError(t, err)

	_, ok := info.Build()
	assert.False(t, ok)
	_, ok = info.Version()
	assert.False(t, ok)
	_, ok = info.GroupID()
	assert.False(t, ok)
	_, ok = info.APIToken()
	assert.False(t, ok)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("CFBundleVersion: [unclosed"))
	assert.Error(t, err)
}

func TestZeroInfo_AllAbsent(t *testing.T) {
	var info Info
	_, ok := info.APIToken()
	assert.False(t, ok)
	assert.Equal(t, VersionInfo{}, info.Summary())
}

func TestFromMap(t *testing.T) {
	info := FromMap(map[string]any{BuildKey: "7", VersionKey: 3})

	assert.Equal(t, VersionInfo{Build: "7"}, info.Summary())
}

func TestBundled_HasAllKeys(t *testing.T) {
	info := Bundled()

	for _, get := range []func() (string, bool){info.Build, info.Version, info.APIToken, info.GroupID} {
		v, ok := get()
		assert.True(t, ok)
		assert.NotEmpty(t, v)
	}
}
