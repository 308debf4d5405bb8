// Package audit writes one structured event per successful write so
// changes to candidates and vacancies can be traced back to a request.
package audit

import (
	"context"
	"os"

	"go-hr-backend/internal/domain"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Action string

const (
	CandidateCreated      Action = "candidate_created"
	CandidateUpdated      Action = "candidate_updated"
	CandidateDeleted      Action = "candidate_deleted"
	CandidateImageUpdated Action = "candidate_image_updated"
	VacancyCreated        Action = "vacancy_created"
	VacancyUpdated        Action = "vacancy_updated"
	VacancyDeleted        Action = "vacancy_deleted"
	VacancyStatusToggled  Action = "vacancy_status_toggled"
	CandidateAssigned     Action = "candidate_assigned"
	CandidateUnassigned   Action = "candidate_unassigned"
	ReportShared          Action = "report_shared"
)

type Event struct {
	Action     Action
	Collection string
	DocumentID string
	Details    map[string]any
}

type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// New builds a production zap logger writing JSON to stdout.
func New(serviceName string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return NewWithZap(logger, serviceName)
}

func NewWithZap(logger *zap.Logger, serviceName string) *Logger {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	return &Logger{zapLogger: logger, serviceName: serviceName, environment: env}
}

// Nop discards every event.
func Nop() *Logger {
	return NewWithZap(zap.NewNop(), "")
}

func (l *Logger) Log(ctx context.Context, event Event) {
	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("action", string(event.Action)),
		zap.String("collection", event.Collection),
		zap.String("document_id", event.DocumentID),
	}
	if requestID, ok := ctx.Value(domain.KeyRequestID).(string); ok && requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if userID, ok := ctx.Value(domain.KeyUserID).(string); ok && userID != "" {
		fields = append(fields, zap.String("user_id", userID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}
	l.zapLogger.Info("audit", fields...)
}

func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}
