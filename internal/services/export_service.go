package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"yodiet/internal/models"
)

const exportDateLayout = "2006-01-02 15:04"

// ExportCSVHeaders is the column order of a progress export.
var ExportCSVHeaders = []string{"Date", "Goal", "Value", "Unit", "Completed"}

type ExportProgressReader interface {
	ListProgressWithGoalInRange(start time.Time, end time.Time) ([]models.HealthProgressWithGoal, error)
}

// ExportService renders the progress history of a date range as CSV.
type ExportService struct {
	progress ExportProgressReader
}

func NewExportService(progress ExportProgressReader) *ExportService {
	return &ExportService{progress: progress}
}

// BuildRows returns the data rows (headers excluded) for samples with
// start <= date <= end, newest first.
func (service *ExportService) BuildRows(start time.Time, end time.Time) ([][]string, error) {
	samples, err := service.progress.ListProgressWithGoalInRange(start, end)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(samples))
	for _, sample := range samples {
		rows = append(rows, []string{
			sample.Date.Format(exportDateLayout),
			sample.Title,
			strconv.Itoa(sample.Value),
			sample.Unit,
			strconv.FormatBool(sample.IsCompleted),
		})
	}
	return rows, nil
}

// WriteCSV writes headers plus data rows to w and reports how many samples
// were exported.
func (service *ExportService) WriteCSV(w io.Writer, start time.Time, end time.Time) (int, error) {
	rows, err := service.BuildRows(start, end)
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return 0, err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return 0, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, err
	}
	return len(rows), nil
}
