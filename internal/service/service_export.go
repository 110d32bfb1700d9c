package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/metrics"
	"github.com/MKhiriev/go-review-fetcher/models"
)

// CSVContentType is the media type of exported files.
const CSVContentType = "text/csv"

type csvExporter struct {
	metrics metrics.MetricsCollector
	logger  *logger.Logger
}

func NewCSVExporter(collector metrics.MetricsCollector, logger *logger.Logger) Exporter {
	return &csvExporter{metrics: collector, logger: logger}
}

// ExportFileName returns the file name used for appID's export.
func ExportFileName(appID string) string {
	return appID + "_reviews.csv"
}

// Export writes rows under [models.ExportHeader] with no index column. Absent
// response fields become empty cells.
func (e *csvExporter) Export(appID string, rows []models.ExportRow) (models.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(models.ExportHeader); err != nil {
		return models.ExportFile{}, fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range rows {
		record := []string{
			row.Date,
			row.Review,
			strconv.Itoa(row.Rating),
			deref(row.ResponseDate),
			deref(row.Response),
		}
		if err := w.Write(record); err != nil {
			return models.ExportFile{}, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return models.ExportFile{}, fmt.Errorf("flush csv: %w", err)
	}

	e.metrics.RecordExport(len(rows))
	return models.ExportFile{
		Name:        ExportFileName(appID),
		ContentType: CSVContentType,
		Data:        buf.Bytes(),
	}, nil
}

func (e *csvExporter) Save(dir string, file models.ExportFile) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidDirectory, dir)
	}

	path := filepath.Join(dir, filepath.Base(file.Name))
	if err = os.WriteFile(path, file.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	e.logger.Info().Str("path", path).Int("bytes", len(file.Data)).Msg("export saved")
	return path, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
