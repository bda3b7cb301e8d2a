package gameserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_presetsDb(t *testing.T) {
	presets := newTestPresets(t)

	names, err := presets.listPresets(1)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, presets.savePreset(1, "friday", []string{"Ann", "Bob", "Cid"}))
	require.NoError(t, presets.savePreset(1, "anniversary", []string{"", "Bob", ""}))
	require.NoError(t, presets.savePreset(2, "friday", []string{"Xi", "Yu", "Zoe"}))

	players, err := presets.loadPreset(1, "friday")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bob", "Cid"}, players)

	players, err = presets.loadPreset(1, "anniversary")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "Bob", ""}, players, "blank names should survive")

	require.NoError(t, presets.savePreset(1, "friday", []string{"Ann", "Bob", "Cid", "Dan"}))
	players, err = presets.loadPreset(1, "friday")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bob", "Cid", "Dan"}, players, "preset should be overwritten")

	names, err = presets.listPresets(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"anniversary", "friday"}, names)

	_, err = presets.loadPreset(2, "anniversary")
	assert.ErrorIs(t, err, errUnknownPreset)
}
