package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethantsaox/jobflow/internal/mode"
)

func TestMeta_GetSet(t *testing.T) {
	s := testStore(t)

	v, err := s.GetMeta("missing")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, s.SetMeta("k", "v1"))
	v, err = s.GetMeta("k")
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	// Upsert overwrites.
	require.NoError(t, s.SetMeta("k", "v2"))
	v, err = s.GetMeta("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
}

func TestModePreference_DefaultsToLocal(t *testing.T) {
	s := testStore(t)

	m, err := s.ModePreference()
	require.NoError(t, err)
	assert.Equal(t, mode.Local, m)

	require.NoError(t, s.SetModePreference(mode.Authenticated))
	m, err = s.ModePreference()
	require.NoError(t, err)
	assert.Equal(t, mode.Authenticated, m)

	// Unknown stored values read as local.
	require.NoError(t, s.SetMeta("mode_preference", "garbage"))
	m, err = s.ModePreference()
	require.NoError(t, err)
	assert.Equal(t, mode.Local, m)
}
