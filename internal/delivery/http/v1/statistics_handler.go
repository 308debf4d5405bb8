package v1

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Idle proxies drop event streams that stay silent for too long.
var streamHeartbeat = 25 * time.Second

type StatisticsHandler struct {
	statsUC  domain.StatisticsUsecase
	reportUC domain.ReportUsecase
}

func NewStatisticsHandler(r *gin.RouterGroup, statsUC domain.StatisticsUsecase, reportUC domain.ReportUsecase) {
	handler := &StatisticsHandler{statsUC: statsUC, reportUC: reportUC}

	r.GET("/summary", handler.Summary)

	stats := r.Group("/statistics")
	{
		stats.GET("/vacancies", handler.VacancyStats)
		stats.GET("/vacancies/stream", handler.StreamVacancyStats)
		stats.POST("/refresh", handler.Refresh)
		stats.GET("/report", handler.DownloadReport)
		stats.POST("/report/share", handler.ShareReport)
	}
}

// VacancyStats godoc
// @Summary      Vacancy counts by status
// @Description  Available and unavailable counts of the current snapshot. Other counts statuses matching neither bucket.
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.VacancyStats}
// @Failure      503  {object}  response.Response
// @Router       /statistics/vacancies [get]
// @Security     BearerAuth
func (h *StatisticsHandler) VacancyStats(c *gin.Context) {
	stats, err := h.statsUC.CurrentVacancyStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Statistics retrieved", stats)
}

// StreamVacancyStats godoc
// @Summary      Live vacancy counts
// @Description  Server-sent events. A "stats" event carries the full aggregate after every change to the vacancies collection.
// @Tags         statistics
// @Produce      text/event-stream
// @Success      200  {object}  domain.VacancyStats
// @Failure      503  {object}  response.Response
// @Router       /statistics/vacancies/stream [get]
// @Security     BearerAuth
func (h *StatisticsHandler) StreamVacancyStats(c *gin.Context) {
	ctx := c.Request.Context()

	// Only the newest aggregate matters; a slow client skips stale ones.
	updates := make(chan domain.VacancyStats, 1)
	sub, err := h.statsUC.SubscribeVacancyStats(ctx, func(stats domain.VacancyStats) {
		for {
			select {
			case updates <- stats:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	if err != nil {
		c.Error(err)
		return
	}
	defer sub.Cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-sub.Done():
			if err := sub.Err(); err != nil {
				logger.Log.Warn("Statistics stream ended", "error", err, "request_id", c.GetString("RequestID"))
				c.SSEvent("error", gin.H{"message": "Live updates interrupted"})
			}
			return false
		case stats := <-updates:
			c.SSEvent("stats", stats)
			return true
		case <-heartbeat.C:
			_, err := io.WriteString(w, ": heartbeat\n\n")
			return err == nil
		}
	})
}

// Refresh godoc
// @Summary      Manual refresh
// @Description  Counts are already live; this only acknowledges the request
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /statistics/refresh [post]
// @Security     BearerAuth
func (h *StatisticsHandler) Refresh(c *gin.Context) {
	response.Success(c, http.StatusOK, h.statsUC.Refresh(c.Request.Context()), nil)
}

// DownloadReport godoc
// @Summary      Export vacancy report
// @Tags         statistics
// @Produce      text/html
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format  query     string  false  "html (default) or xlsx"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Router       /statistics/report [get]
// @Security     BearerAuth
func (h *StatisticsHandler) DownloadReport(c *gin.Context) {
	report, err := h.reportUC.RenderVacancyReport(c.Request.Context(), domain.ReportFormat(c.Query("format")))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	c.Data(http.StatusOK, report.ContentType, report.Body)
}

// ShareReport godoc
// @Summary      Share vacancy report
// @Description  Uploads the rendered report and returns a time-limited download link
// @Tags         statistics
// @Produce      json
// @Param        format  query     string  false  "html (default) or xlsx"
// @Success      200     {object}  response.Response{data=domain.SharedReport}
// @Failure      502     {object}  response.Response
// @Failure      503     {object}  response.Response
// @Router       /statistics/report/share [post]
// @Security     BearerAuth
func (h *StatisticsHandler) ShareReport(c *gin.Context) {
	shared, err := h.reportUC.ShareVacancyReport(c.Request.Context(), domain.ReportFormat(c.Query("format")))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Report shared", shared)
}

// Summary godoc
// @Summary      Home screen counters
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Summary}
// @Failure      503  {object}  response.Response
// @Router       /summary [get]
// @Security     BearerAuth
func (h *StatisticsHandler) Summary(c *gin.Context) {
	summary, err := h.statsUC.Summary(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Summary retrieved", summary)
}
