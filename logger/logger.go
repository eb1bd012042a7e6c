package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	entry *logrus.Logger
}

var (
	instance *Logger
	once     sync.Once
)

// istFormatter renders timestamps in IST regardless of host timezone.
type istFormatter struct {
	inner logrus.Formatter
	loc   *time.Location
}

func (f *istFormatter) Format(e *logrus.Entry) ([]byte, error) {
	e.Time = e.Time.In(f.loc)
	return f.inner.Format(e)
}

// GetLogger returns a singleton logger instance
func GetLogger() *Logger {
	once.Do(func() {
		instance = setupLogger()
	})
	return instance
}

// L is a shorthand for GetLogger
func L() *Logger {
	return GetLogger()
}

func setupLogger() *Logger {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		ist = time.UTC
	}

	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&istFormatter{
		inner: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "02-01-06:15:04:05",
		},
		loc: ist,
	})

	// Log to file and stderr together; fall back to stderr only
	dir, _ := os.Getwd()
	logDir := filepath.Join(dir, "logs")
	os.MkdirAll(logDir, 0755)

	logFile := filepath.Join(logDir, "application.log")
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		l.SetOutput(os.Stderr)
	} else {
		l.SetOutput(io.MultiWriter(os.Stderr, file))
	}

	return &Logger{entry: l}
}

func fields(props []map[string]interface{}) logrus.Fields {
	if len(props) == 0 || props[0] == nil {
		return nil
	}
	return logrus.Fields(props[0])
}

func (l *Logger) Info(msg string, props ...map[string]interface{}) {
	l.entry.WithFields(fields(props)).Info(msg)
}

func (l *Logger) Error(msg string, props ...map[string]interface{}) {
	l.entry.WithFields(fields(props)).Error(msg)
}

func (l *Logger) Debug(msg string, props ...map[string]interface{}) {
	l.entry.WithFields(fields(props)).Debug(msg)
}

func (l *Logger) Fatal(msg string, props ...map[string]interface{}) {
	l.entry.WithFields(fields(props)).Fatal(msg)
}

// EnableDebug enables debug logging
func (l *Logger) EnableDebug() {
	l.entry.SetLevel(logrus.DebugLevel)
}

// DisableDebug disables debug logging
func (l *Logger) DisableDebug() {
	l.entry.SetLevel(logrus.InfoLevel)
}
