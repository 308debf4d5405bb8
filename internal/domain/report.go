package domain

import (
	"context"
	"errors"
	"time"
)

var ErrSharingUnavailable = errors.New("report sharing is not available")

type ReportFormat string

const (
	ReportHTML ReportFormat = "html"
	ReportXLSX ReportFormat = "xlsx"
)

func (f ReportFormat) Valid() bool {
	return f == ReportHTML || f == ReportXLSX
}

type Report struct {
	Format      ReportFormat
	ContentType string
	Filename    string
	Body        []byte
	Stats       VacancyStats
}

type SharedReport struct {
	Key       string       `json:"key"`
	URL       string       `json:"url"`
	Format    ReportFormat `json:"format"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// FileStorage stores exported reports and profile images.
type FileStorage interface {
	Upload(ctx context.Context, key, contentType string, body []byte) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	ObjectURL(key string) string
}

type ReportUsecase interface {
	RenderVacancyReport(ctx context.Context, format ReportFormat) (*Report, error)
	ShareVacancyReport(ctx context.Context, format ReportFormat) (*SharedReport, error)
}
