package logfan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelToIntNames(t *testing.T) {
	for name, want := range map[string]int{
		"critical": 0,
		"error":    1,
		"warning":  2,
		"info":     3,
		"debug":    4,
	} {
		got, err := LevelToInt(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, "name %q", name)
	}
}

func TestLevelToIntIntegers(t *testing.T) {
	for _, rank := range []int{-3, 0, 4, 9, 100} {
		got, err := LevelToInt(rank)
		require.NoError(t, err)
		assert.Equal(t, rank, got)
	}

	got, err := LevelToInt(LevelWarning)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = LevelToInt(int64(7))
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	got, err = LevelToInt(uint8(3))
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestLevelToIntInvalid(t *testing.T) {
	for _, bad := range []any{"verbose", "INFO", "", 1.5, true, nil, []int{1}} {
		_, err := LevelToInt(bad)
		require.ErrorIs(t, err, ErrInvalidLevel, "input %#v", bad)
	}
}

func TestLevelLabel(t *testing.T) {
	assert.Equal(t, "CRITICAL: ", levelLabel(0))
	assert.Equal(t, "ERROR: ", levelLabel(1))
	assert.Equal(t, "WARNING: ", levelLabel(2))
	assert.Equal(t, "INFO: ", levelLabel(3))
	assert.Equal(t, "DEBUG: ", levelLabel(4))
	assert.Equal(t, "Log level -3: ", levelLabel(-3))
	assert.Equal(t, "Log level 9: ", levelLabel(9))
}
