package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

// LogrusLogger implements the IAppLogger contract over logrus.
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a logger configured from the LOG_LEVEL
// environment variable (default info).
func NewLogrusLogger() usecasecontract.IAppLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		l.SetLevel(lvl)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return &LogrusLogger{log: l}
}

// Debugf logs a debug message.
func (l *LogrusLogger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Infof logs an info message.
func (l *LogrusLogger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Warnf logs a warning message.
func (l *LogrusLogger) Warnf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Errorf logs an error message.
func (l *LogrusLogger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *LogrusLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(format, args...)
}
