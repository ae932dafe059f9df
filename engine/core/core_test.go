package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"":        InfoLevel,
		"warning": WarnLevel,
		" error ": ErrorLevel,
		"fatal":   FatalLevel,
	}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
}

func TestNewMeshIDIsUnique(t *testing.T) {
	a := NewMeshID()
	b := NewMeshID()
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
	assert.Len(t, ShortID(a), 8)
	assert.Equal(t, "plain", ShortID("plain"))
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Update()
	assert.Zero(t, c.Elapsed(), "unstarted clock does not advance")

	c.Start()
	time.Sleep(2 * time.Millisecond)
	c.Stop()
	elapsed := c.Elapsed()
	assert.Greater(t, elapsed, time.Duration(0))

	c.Update()
	assert.Equal(t, elapsed, c.Elapsed(), "stopped clock keeps its reading")
}
