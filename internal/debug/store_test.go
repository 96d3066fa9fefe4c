package debug_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"camerakitsample/internal/debug"
	"camerakitsample/internal/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, defaults *mocks.DefaultsMock, opts ...debug.Option) *debug.Store {
	t.Helper()
	store, err := debug.New([]string{"bundled", "default-group"}, mocks.TokenSourceMock{Token: "bundled-token"}, defaults, opts...)
	require.NoError(t, err)
	return store
}

func TestNew_UsesBundledValuesWhenNothingPersisted(t *testing.T) {
	defaults := &mocks.DefaultsMock{}
	store := newStore(t, defaults)

	assert.Equal(t, "bundled-token", store.APIToken())
	assert.Equal(t, []string{"bundled", "default-group"}, store.GroupIDs())

	// seeded values are written back
	assert.Equal(t, "bundled-token", defaults.StringValues[debug.APITokenDefaultsKey])
	assert.Equal(t, []string{"bundled", "default-group"}, defaults.ListValues[debug.LensGroupIDsDefaultsKey])
}

func TestNew_PrefersPersistedValues(t *testing.T) {
	defaults := &mocks.DefaultsMock{
		StringValues: map[string]string{debug.APITokenDefaultsKey: "persisted-token"},
		ListValues:   map[string][]string{debug.LensGroupIDsDefaultsKey: {"g1", "g2"}},
	}
	store := newStore(t, defaults)

	assert.Equal(t, "persisted-token", store.APIToken())
	assert.Equal(t, []string{"g1", "g2"}, store.GroupIDs())
}

func TestNew_PersistedEmptyGroupListIsKept(t *testing.T) {
	defaults := &mocks.DefaultsMock{
		ListValues: map[string][]string{debug.LensGroupIDsDefaultsKey: {}},
	}
	store := newStore(t, defaults)

	assert.Empty(t, store.GroupIDs())
}

func TestNew_PlaceholderTokenFails(t *testing.T) {
	store, err := debug.New(nil, mocks.TokenSourceMock{Token: debug.PlaceholderAPIToken}, &mocks.DefaultsMock{})

	assert.Nil(t, store)
	assert.ErrorIs(t, err, debug.ErrPlaceholderToken)
}

func TestNew_PlaceholderTokenFailsEvenWithPersistedToken(t *testing.T) {
	defaults := &mocks.DefaultsMock{
		StringValues: map[string]string{debug.APITokenDefaultsKey: "persisted-token"},
	}
	_, err := debug.New(nil, mocks.TokenSourceMock{Token: debug.PlaceholderAPIToken}, defaults)

	assert.ErrorIs(t, err, debug.ErrPlaceholderToken)
}

func TestNew_MissingTokenFails(t *testing.T) {
	_, err := debug.New(nil, mocks.TokenSourceMock{Missing: true}, &mocks.DefaultsMock{})

	assert.ErrorIs(t, err, debug.ErrMissingToken)
}

func TestNew_ReadErrorIsReturned(t *testing.T) {
	defaults := &mocks.DefaultsMock{
		StringFunc: func(key string) (string, bool, error) {
			return "", false, errors.New("disk gone")
		},
	}
	_, err := debug.New(nil, mocks.TokenSourceMock{Token: "t"}, defaults)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestNew_DefaultGroupIDsAreCopied(t *testing.T) {
	groups := []string{"a", "b"}
	store, err := debug.New(groups, mocks.TokenSourceMock{Token: "t"}, &mocks.DefaultsMock{})
	require.NoError(t, err)

	groups[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, store.GroupIDs())
}

func TestSetAPIToken_PersistsAndPublishes(t *testing.T) {
	defaults := &mocks.DefaultsMock{}
	store := newStore(t, defaults)

	var seen []debug.Settings
	cancel := store.Subscribe(func(s debug.Settings) { seen = append(seen, s) })
	defer cancel()

	require.NoError(t, store.SetAPIToken("X"))

	value, ok, err := defaults.String(debug.APITokenDefaultsKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "X", value)

	require.Len(t, seen, 2)
	assert.Equal(t, "bundled-token", seen[0].APIToken)
	assert.Equal(t, "X", seen[1].APIToken)
}

func TestSetAPIToken_PersistFailureKeepsValue(t *testing.T) {
	defaults := &mocks.DefaultsMock{}
	store := newStore(t, defaults)
	defaults.SetStringFunc = func(key, value string) error { return errors.New("read-only") }

	err := store.SetAPIToken("X")

	assert.Error(t, err)
	assert.Equal(t, "X", store.APIToken())
}

func TestSetGroupIDs_PersistsCopy(t *testing.T) {
	defaults := &mocks.DefaultsMock{}
	store := newStore(t, defaults)

	ids := []string{"x", "y"}
	require.NoError(t, store.SetGroupIDs(ids))
	ids[0] = "mutated"

	assert.Equal(t, []string{"x", "y"}, store.GroupIDs())
	assert.Equal(t, []string{"x", "y"}, defaults.ListValues[debug.LensGroupIDsDefaultsKey])
}

func TestSubscribe_CancelStopsUpdates(t *testing.T) {
	store := newStore(t, &mocks.DefaultsMock{})

	calls := 0
	cancel := store.Subscribe(func(debug.Settings) { calls++ })
	cancel()
	cancel()

	require.NoError(t, store.SetGroupIDs([]string{"z"}))
	assert.Equal(t, 1, calls)
}

func TestReset_RestoresDefaults(t *testing.T) {
	defaults := &mocks.DefaultsMock{
		StringValues: map[string]string{debug.APITokenDefaultsKey: "persisted-token"},
		ListValues:   map[string][]string{debug.LensGroupIDsDefaultsKey: {"g1"}},
	}
	store := newStore(t, defaults)

	var seen []debug.Settings
	cancel := store.Subscribe(func(s debug.Settings) { seen = append(seen, s) })
	defer cancel()

	require.NoError(t, store.Reset())

	want := debug.Settings{
		APIToken: "bundled-token",
		GroupIDs: []string{"bundled", "default-group"},
	}
	assert.Equal(t, want, store.Settings())
	assert.Equal(t, want, seen[len(seen)-1])

	// persisted rows are dropped, not overwritten
	assert.ElementsMatch(t, []string{debug.APITokenDefaultsKey, debug.LensGroupIDsDefaultsKey}, defaults.Removed)
	assert.NotContains(t, defaults.StringValues, debug.APITokenDefaultsKey)
	assert.NotContains(t, defaults.ListValues, debug.LensGroupIDsDefaultsKey)
}

func TestReset_ThenRestartSeedsFromBundledValues(t *testing.T) {
	defaults := &mocks.DefaultsMock{
		StringValues: map[string]string{debug.APITokenDefaultsKey: "persisted-token"},
	}
	require.NoError(t, newStore(t, defaults).Reset())

	restarted := newStore(t, defaults)
	assert.Equal(t, "bundled-token", restarted.APIToken())
	assert.Equal(t, []string{"bundled", "default-group"}, restarted.GroupIDs())
}

func TestReset_RemoveFailureStillRestoresMemory(t *testing.T) {
	defaults := &mocks.DefaultsMock{
		RemoveFunc: func(string) error { return errors.New("disk full") },
	}
	store := newStore(t, defaults)
	require.NoError(t, store.SetAPIToken("other"))

	err := store.Reset()

	require.Error(t, err)
	assert.Equal(t, "bundled-token", store.APIToken())
}

func TestSetters_SubscribersSeeWritesInOrder(t *testing.T) {
	store := newStore(t, &mocks.DefaultsMock{})

	var (
		mu   sync.Mutex
		last debug.Settings
	)
	cancel := store.Subscribe(func(s debug.Settings) {
		mu.Lock()
		last = s
		mu.Unlock()
	})
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_ = store.SetGroupIDs([]string{fmt.Sprintf("g%d", i)})
			} else {
				_ = store.SetAPIToken(fmt.Sprintf("t%d", i))
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, store.Settings(), last)
}
