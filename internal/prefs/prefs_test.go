package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RAAHUL-tech/portfolio/internal/theme"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(theme.StorageKey)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, theme.ErrNoValue)

	require.NoError(t, s.Set(theme.StorageKey, "dark"))
	require.NoError(t, s.Set(theme.StorageKey, "light"))

	got, err := s.Get(theme.StorageKey)
	require.NoError(t, err)
	require.Equal(t, "light", got)
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(theme.StorageKey, "dark"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	require.Equal(t, theme.ModeDark, theme.InitialMode(s))
}

func TestPolicyPersistsThroughStore(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	p := theme.NewPolicy(s, nil, theme.WithInterval(0))
	p.SetMode(theme.ModeLight)
	p.Close()

	require.Equal(t, theme.ModeLight, theme.InitialMode(s))
}
