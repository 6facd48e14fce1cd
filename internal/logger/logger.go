// Package logger provides the application-wide structured logger.
package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init and discards
// nothing; Init only reconfigures level, format and output.
var Log = logrus.New()

// Options configures the global logger.
type Options struct {
	Level  string    // logrus level name; unknown names fall back to info
	Format string    // "json" or "text"
	Output io.Writer // destination; nil keeps the current output
}

// Init configures the global logger. Call it once from main.
func Init(opts Options) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if opts.Output != nil {
		Log.SetOutput(opts.Output)
	}
}

// Component returns an entry tagged with the emitting component.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
