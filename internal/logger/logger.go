package logger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

type contextKey string

// Context keys read by WithContext
const (
	KeyRequestID contextKey = "request_id"
	KeyOrg       contextKey = "org"
	KeyAccount   contextKey = "account"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logger: JSON output on stdout at the given level
func Setup(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithValues stores logging fields on ctx for later WithContext calls
func WithValues(ctx context.Context, requestID, org, account string) context.Context {
	if requestID != "" {
		ctx = context.WithValue(ctx, KeyRequestID, requestID)
	}
	if org != "" {
		ctx = context.WithValue(ctx, KeyOrg, org)
	}
	if account != "" {
		ctx = context.WithValue(ctx, KeyAccount, account)
	}
	return ctx
}

// WithContext creates a logger carrying the request, org and account found in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if ctx == nil {
		return logger
	}

	fields := logrus.Fields{}
	if id, ok := ctx.Value(KeyRequestID).(string); ok && id != "" {
		fields["request_id"] = id
	}
	if org, ok := ctx.Value(KeyOrg).(string); ok && org != "" {
		fields["org"] = org
	}
	if account, ok := ctx.Value(KeyAccount).(string); ok && account != "" {
		fields["account"] = account
	} else {
		fields["account"] = "anonymous"
	}

	logger.Entry = logger.Entry.WithFields(fields)
	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError adds an error field to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
