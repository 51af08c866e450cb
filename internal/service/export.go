package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/xuri/excelize/v2"

	"github.com/costmanager/costmanager-server/internal/apperror"
	"github.com/costmanager/costmanager-server/internal/logger"
	"github.com/costmanager/costmanager-server/internal/model"
)

// WorkbookContentType is the MIME type of rendered report workbooks.
const WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const reportSheet = "Report"

// ReportBuilder produces monthly reports.
type ReportBuilder interface {
	GetReport(ctx context.Context, userID string, period model.ReportPeriod) (model.Report, error)
}

// Export renders monthly reports as spreadsheets and archives them in object
// storage. storage may be nil, in which case archiving is unavailable.
type Export struct {
	reports ReportBuilder
	storage model.Storage
	logger  *logger.Logger
}

func NewExport(reports ReportBuilder, storage model.Storage, logger *logger.Logger) *Export {
	return &Export{
		reports: reports,
		storage: storage,
		logger:  logger,
	}
}

// ExportReport builds the report and renders it as an xlsx workbook.
func (s *Export) ExportReport(ctx context.Context, userID string, period model.ReportPeriod) (*bytes.Buffer, error) {
	report, err := s.reports.GetReport(ctx, userID, period)
	if err != nil {
		return nil, err
	}

	buf, err := RenderWorkbook(report)
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return buf, nil
}

// ArchiveReport renders the report and uploads it, returning the object key.
func (s *Export) ArchiveReport(ctx context.Context, userID string, period model.ReportPeriod) (string, error) {
	if s.storage == nil {
		return "", apperror.NewErrArchiveDisabled()
	}

	buf, err := s.ExportReport(ctx, userID, period)
	if err != nil {
		return "", err
	}

	key := ArchiveKey(userID, period)
	if err := s.storage.Upload(ctx, key, buf, int64(buf.Len()), WorkbookContentType); err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	s.logger.Info("report archived", "user_id", userID, "key", key)

	return key, nil
}

// GetArchivedReport opens a previously archived workbook. The caller closes
// the returned reader.
func (s *Export) GetArchivedReport(ctx context.Context, userID string, period model.ReportPeriod) (io.ReadCloser, error) {
	if s.storage == nil {
		return nil, apperror.NewErrArchiveDisabled()
	}

	key := ArchiveKey(userID, period)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check archive: %w", err)
	}
	if !exists {
		return nil, apperror.NewErrArchiveNotFound(key)
	}

	reader, err := s.storage.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download from storage: %w", err)
	}

	return reader, nil
}

// ArchiveKey is the object key a user's monthly workbook is stored under.
func ArchiveKey(userID string, period model.ReportPeriod) string {
	return fmt.Sprintf("reports/%s/%04d-%02d.xlsx", url.PathEscape(userID), period.Year, period.Month)
}

// RenderWorkbook writes one row per report item in category order followed by
// a total row.
func RenderWorkbook(report model.Report) (buf *bytes.Buffer, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}

	header := []any{"Category", "Day", "Description", "Sum"}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	var total float64
	for _, category := range model.Categories {
		for _, item := range report.Costs[category] {
			values := []any{string(category), item.Day, item.Description, item.Sum}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
				return nil, err
			}
			total += item.Sum
			row++
		}
	}

	totalRow := []any{"total", "", fmt.Sprintf("%s %04d-%02d", report.UserID, report.Year, report.Month), total}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(reportSheet, cell, &totalRow); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(reportSheet, "A", "A", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(reportSheet, "C", "C", 30); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}
