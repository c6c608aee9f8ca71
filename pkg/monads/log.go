package monads

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used for debug output. A nil logger
// disables logging. It is meant to be called once during initialization.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		l = discard
	}
	log = l
}

// Logger returns the logger currently in use.
func Logger() logrus.FieldLogger {
	return log
}
