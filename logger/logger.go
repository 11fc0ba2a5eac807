package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger; nil until Init
var Log *logrus.Logger

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

// Init configures Log from LOG_LEVEL (default info) and LOG_FORMAT (json|text)
// Output goes to w; the terminal sandbox passes a file so logs do not tear the screen
func Init(w io.Writer) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			DisableColors:    true,
			QuoteEmptyFields: true,
		})
	}

	if w == nil {
		w = os.Stderr
	}
	Log.SetOutput(w)
}

// Get returns Log, or a discarding logger when Init was never called
func Get() *logrus.Logger {
	if Log == nil {
		return discard
	}
	return Log
}

// Component returns an entry tagged with the component field
func Component(name string) *logrus.Entry {
	return Get().WithField("component", name)
}
