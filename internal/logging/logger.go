// README: Structured JSON logger construction.
package logging

import (
	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger with JSON output, suitable for shipping
// to any log backend. Unknown levels fall back to info.
func NewLogger(level string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)
	return l
}
