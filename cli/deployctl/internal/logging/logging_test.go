package logging

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	t.Setenv("DEPLOYKIT_DEBUG", "")
	var buf bytes.Buffer
	l := New(&buf, "warn")
	require.Equal(t, log.WarnLevel, l.GetLevel())
	l.Info("hidden")
	require.Empty(t, buf.String())
	l.WithField("step", 2).Warn("visible")
	require.Contains(t, buf.String(), "visible")
	require.Contains(t, buf.String(), "step=2")
}

func TestNewInvalidLevelFallsBack(t *testing.T) {
	t.Setenv("DEPLOYKIT_DEBUG", "")
	var buf bytes.Buffer
	l := New(&buf, "chatty")
	require.Equal(t, log.InfoLevel, l.GetLevel())
	require.Contains(t, buf.String(), "invalid log level chatty")
}

func TestDebugEnvForcesDebug(t *testing.T) {
	t.Setenv("DEPLOYKIT_DEBUG", "1")
	l := New(&bytes.Buffer{}, "error")
	require.Equal(t, log.DebugLevel, l.GetLevel())
}
