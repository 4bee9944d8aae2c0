// Package logging configures the logrus logger used for diagnostics. Operator
// facing progress text is printed separately and never goes through here.
package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// New returns a text logger writing to w at the given level. An unknown level
// falls back to info with a warning; DEPLOYKIT_DEBUG=1 forces debug.
func New(w io.Writer, level string) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if lvl, err := log.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	} else {
		l.SetLevel(log.InfoLevel)
		l.Warnf("invalid log level %s, defaulting to info", level)
	}
	if os.Getenv("DEPLOYKIT_DEBUG") == "1" {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
