//go:build !windows

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shu-go/opac/opacity"
)

func TestEnvironmentFailureOffWindows(t *testing.T) {
	_, err := newController("Code")
	assert.ErrorIs(t, err, opacity.ErrEnvironment)

	_, err = desktopController{target: "Code"}.Restore()
	assert.ErrorIs(t, err, opacity.ErrEnvironment)

	err = recoverCmd{}.Run()
	assert.ErrorIs(t, err, opacity.ErrEnvironment)
}
