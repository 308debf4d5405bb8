package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
	"go-hr-backend/pkg/audit"
	"go-hr-backend/pkg/report"

	"github.com/google/uuid"
)

type reportUsecase struct {
	stats    domain.StatisticsUsecase
	storage  domain.FileStorage
	shareTTL time.Duration
	audit    *audit.Logger
	now      func() time.Time
}

// NewReportUsecase wires report rendering. storage may be nil, in which
// case sharing fails with domain.ErrSharingUnavailable.
func NewReportUsecase(stats domain.StatisticsUsecase, storage domain.FileStorage, shareTTL time.Duration, auditLog *audit.Logger) domain.ReportUsecase {
	return &reportUsecase{
		stats:    stats,
		storage:  storage,
		shareTTL: shareTTL,
		audit:    auditLog,
		now:      time.Now,
	}
}

func (u *reportUsecase) RenderVacancyReport(ctx context.Context, format domain.ReportFormat) (*domain.Report, error) {
	if format == "" {
		format = domain.ReportHTML
	}
	if !format.Valid() {
		return nil, apperror.BadRequest(fmt.Sprintf("Unsupported report format %q", format))
	}

	stats, err := u.stats.CurrentVacancyStats(ctx)
	if err != nil {
		return nil, err
	}

	out := &domain.Report{
		Format:   format,
		Filename: fmt.Sprintf("reporte_vacantes_%s.%s", stats.AsOf.Format("20060102_150405"), format),
		Stats:    *stats,
	}
	switch format {
	case domain.ReportXLSX:
		out.ContentType = report.ContentTypeXLSX
		out.Body, err = report.XLSX(*stats)
	default:
		out.ContentType = report.ContentTypeHTML
		out.Body, err = report.HTML(*stats)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return out, nil
}

// ShareVacancyReport uploads a freshly rendered report and returns a
// time-limited download link.
func (u *reportUsecase) ShareVacancyReport(ctx context.Context, format domain.ReportFormat) (*domain.SharedReport, error) {
	if u.storage == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "sharing unavailable", domain.ErrSharingUnavailable)
	}

	rendered, err := u.RenderVacancyReport(ctx, format)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reports/%s.%s", uuid.NewString(), rendered.Format)
	if err := u.storage.Upload(ctx, key, rendered.ContentType, rendered.Body); err != nil {
		return nil, apperror.New(http.StatusBadGateway, "Failed to upload report", err)
	}
	url, err := u.storage.PresignGet(ctx, key, u.shareTTL)
	if err != nil {
		return nil, apperror.New(http.StatusBadGateway, "Failed to create share link", err)
	}

	u.audit.Log(ctx, audit.Event{
		Action:  audit.ReportShared,
		Details: map[string]any{"key": key, "format": string(rendered.Format)},
	})
	return &domain.SharedReport{
		Key:       key,
		URL:       url,
		Format:    rendered.Format,
		ExpiresAt: u.now().Add(u.shareTTL),
	}, nil
}
