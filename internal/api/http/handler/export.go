package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costmanager/costmanager-server/internal/logger"
	"github.com/costmanager/costmanager-server/internal/model"
	"github.com/costmanager/costmanager-server/internal/service"
)

// ExportService renders and archives report workbooks.
type ExportService interface {
	ExportReport(ctx context.Context, userID string, period model.ReportPeriod) (*bytes.Buffer, error)
	ArchiveReport(ctx context.Context, userID string, period model.ReportPeriod) (string, error)
	GetArchivedReport(ctx context.Context, userID string, period model.ReportPeriod) (io.ReadCloser, error)
}

// Export handles the spreadsheet download and archive endpoints.
type Export struct {
	exportService ExportService
	logger        *logger.Logger
}

func NewExport(exportService ExportService, logger *logger.Logger) *Export {
	return &Export{
		exportService: exportService,
		logger:        logger,
	}
}

type archiveResponse struct {
	Key string `json:"key"`
}

func workbookFilename(userID string, period model.ReportPeriod) string {
	return fmt.Sprintf("report-%s-%04d-%02d.xlsx", userID, period.Year, period.Month)
}

// Download handles GET /api/report/export.
func (h *Export) Download(c *gin.Context) {
	userID, period, err := reportQuery(c)
	if err != nil {
		handleError(c, err)
		return
	}

	buf, err := h.exportService.ExportReport(c.Request.Context(), userID, period)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", workbookFilename(userID, period)))
	c.Data(http.StatusOK, service.WorkbookContentType, buf.Bytes())
}

// Archive handles POST /api/report/archive.
func (h *Export) Archive(c *gin.Context) {
	userID, period, err := reportQuery(c)
	if err != nil {
		handleError(c, err)
		return
	}

	key, err := h.exportService.ArchiveReport(c.Request.Context(), userID, period)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, archiveResponse{Key: key})
}

// GetArchive handles GET /api/report/archive.
func (h *Export) GetArchive(c *gin.Context) {
	userID, period, err := reportQuery(c)
	if err != nil {
		handleError(c, err)
		return
	}

	rc, err := h.exportService.GetArchivedReport(c.Request.Context(), userID, period)
	if err != nil {
		handleError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, -1, service.WorkbookContentType, rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", workbookFilename(userID, period)),
	})
}
