package logx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitDisabledDiscardsOutput(t *testing.T) {
	Init(Options{Enabled: false})
	require.NotNil(t, L)
	// Discard handlers never error and never panic on any level.
	Debug("x")
	Info("y")
	Warn("z")
	Error("w")
}

func TestInitEnabledSwitchesHandler(t *testing.T) {
	Init(Options{Enabled: true, JSON: true})
	require.True(t, L.Enabled(nil, 0))
	Init(Options{Enabled: false})
}
