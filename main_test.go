package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shu-go/opac/opacity"
)

func TestWindowsKeyIgnoresOrder(t *testing.T) {
	a := []opacity.Window{{Handle: 0x20}, {Handle: 0x1}}
	b := []opacity.Window{{Handle: 0x1}, {Handle: 0x20}}

	assert.Equal(t, windowsKey(a), windowsKey(b))
	assert.NotEqual(t, windowsKey(a), windowsKey(a[:1]))
	assert.Equal(t, "", windowsKey(nil))
}

func TestSetRejectsBadPercentBeforeOpening(t *testing.T) {
	for _, arg := range []string{"abc", "-1", "101"} {
		err := setCmd{}.Run([]string{arg})
		assert.ErrorIs(t, err, opacity.ErrInvalidPercent, arg)
	}
}

func TestSetRejectsExtraArguments(t *testing.T) {
	err := setCmd{}.Run([]string{"10", "20"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many arguments")
}

func TestDesktopControllerValidatesFirst(t *testing.T) {
	_, err := desktopController{target: "Code"}.SetOpacity(101)
	assert.ErrorIs(t, err, opacity.ErrInvalidPercent)
}

func TestWatchBefore(t *testing.T) {
	assert.NoError(t, (&watchCmd{Percent: "40"}).Before())
	assert.NoError(t, (&watchCmd{}).Before())
	assert.ErrorIs(t, (&watchCmd{Percent: "140"}).Before(), opacity.ErrInvalidPercent)
	assert.Error(t, (&watchCmd{Interval: -1}).Before())
}
