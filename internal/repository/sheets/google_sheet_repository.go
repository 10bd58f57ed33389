package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/greenthumb/internal/config"
	"github.com/mamadbah2/greenthumb/internal/domain/models"
)

const (
	dateLayout  = "2006-01-02"
	reportRange = "Reports!A:K"
)

// Repository is the report export backed by a spreadsheet.
type Repository interface {
	AppendReport(ctx context.Context, report models.DailyReport) error
}

// GoogleSheetRepository implements the Repository interface using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendReport adds one row per daily report to the Reports tab.
func (r *GoogleSheetRepository) AppendReport(ctx context.Context, report models.DailyReport) error {
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{ReportRow(report)}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, reportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append report row into range %s: %w", reportRange, err)
	}

	r.logger.Debug("report row appended", zap.String("date", report.Date.Format(dateLayout)))
	return nil
}

// ReportRow lays a report out in the column order of the Reports tab.
func ReportRow(report models.DailyReport) []interface{} {
	return []interface{}{
		report.Date.Format(dateLayout),
		report.Plants,
		report.GardenBeds,
		report.TasksDueToday,
		report.TasksOverdue,
		report.TasksUpcoming,
		report.TasksCompleted,
		report.HarvestsLogged,
		report.HarvestQuality,
		report.WeatherSummary,
		report.ActiveAlerts,
	}
}
