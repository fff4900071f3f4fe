package eventlog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the kind of write or guard event being recorded
type EventType string

const (
	EventJobPosted            EventType = "job_posted"
	EventApplicationSubmitted EventType = "application_submitted"
	EventProfileSaved         EventType = "profile_saved"
	EventWriteRejected        EventType = "write_rejected"
	EventAuthRequired         EventType = "auth_required"
	EventDuplicateSubmit      EventType = "duplicate_submit"
	EventRateLimitTriggered   EventType = "rate_limit_triggered"
)

// Event is one structured record in the event log
type Event struct {
	Timestamp    time.Time
	Event        EventType
	SubjectType  string // "user_id", "email", "ip"
	SubjectValue string // masked or hashed before it is written
	RequestID    string
	Details      map[string]interface{}
}

// Logger writes events through zap. A nil *Logger is a valid no-op logger.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

func New(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return NewWithZap(logger, serviceName, environment)
}

// NewWithZap wraps an existing zap logger, e.g. an observer core in tests.
func NewWithZap(logger *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// Log records an event. The request context is accepted for symmetry with the
// other write paths; logging never blocks on it.
func (l *Logger) Log(_ context.Context, event Event) {
	if l == nil || l.zapLogger == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	level := zapcore.InfoLevel
	switch event.Event {
	case EventWriteRejected, EventAuthRequired, EventDuplicateSubmit, EventRateLimitTriggered:
		level = zapcore.WarnLevel
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields,
			zap.String("subject_type", event.SubjectType),
			zap.String("subject_value", maskValue(event.SubjectType, event.SubjectValue)),
		)
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l == nil || l.zapLogger == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[atIndex:]
}

// HashValue creates a short SHA256 digest of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func maskValue(subjectType, value string) string {
	switch subjectType {
	case "email":
		return MaskEmail(value)
	case "ip":
		return value
	default:
		return HashValue(value)
	}
}
