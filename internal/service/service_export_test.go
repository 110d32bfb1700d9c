package service

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/metrics"
	"github.com/MKhiriev/go-review-fetcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "com.whatsapp_reviews.csv", ExportFileName("com.whatsapp"))
}

func TestCSVExporter_Export(t *testing.T) {
	e := NewCSVExporter(metrics.Nop(), logger.Nop())

	file, err := e.Export("com.whatsapp", ToExportRows(sampleReviews()))
	require.NoError(t, err)

	assert.Equal(t, "com.whatsapp_reviews.csv", file.Name)
	assert.Equal(t, CSVContentType, file.ContentType)
	assert.Equal(t,
		"Date,Review,Rating,Response_date,Response\n"+
			"15/01/24,Great app,5,16/01/24,Thanks!\n"+
			"03/12/23,Crashes,1,,\n",
		string(file.Data))
}

func TestCSVExporter_Export_Quoting(t *testing.T) {
	e := NewCSVExporter(metrics.Nop(), logger.Nop())
	rows := []models.ExportRow{{
		Date:   "01/02/24",
		Review: "Good, but \"slow\"\nsecond line",
		Rating: 3,
	}}

	file, err := e.Export("a", rows)
	require.NoError(t, err)
	assert.Equal(t,
		"Date,Review,Rating,Response_date,Response\n"+
			"01/02/24,\"Good, but \"\"slow\"\"\nsecond line\",3,,\n",
		string(file.Data))
}

func TestCSVExporter_Export_ParsesBack(t *testing.T) {
	e := NewCSVExporter(metrics.Nop(), logger.Nop())
	replyDate, reply := "05/02/24", "Merci, \"bien\" noté\nà bientôt"
	rows := []models.ExportRow{
		{Date: "04/02/24", Review: "Très bien, 👍 \"five\" stars", Rating: 5, ResponseDate: &replyDate, Response: &reply},
		{Date: "03/02/24", Review: "line one\nline two, with comma", Rating: 2},
		{Date: "02/02/24", Review: "", Rating: 1, ResponseDate: &replyDate},
		{Date: "01/02/24", Review: "日本語のレビュー", Rating: 4},
	}

	file, err := e.Export("com.example.app", rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+len(rows))
	assert.Equal(t, models.ExportHeader, records[0])

	for i, row := range rows {
		want := []string{row.Date, row.Review, strconv.Itoa(row.Rating), "", ""}
		if row.ResponseDate != nil {
			want[3] = *row.ResponseDate
		}
		if row.Response != nil {
			want[4] = *row.Response
		}
		assert.Equal(t, want, records[i+1], "row %d", i)
	}
}

func TestCSVExporter_Export_HeaderOnly(t *testing.T) {
	e := NewCSVExporter(metrics.Nop(), logger.Nop())

	file, err := e.Export("a", nil)
	require.NoError(t, err)
	assert.Equal(t, "Date,Review,Rating,Response_date,Response\n", string(file.Data))
}

func TestCSVExporter_Save(t *testing.T) {
	e := NewCSVExporter(metrics.Nop(), logger.Nop())
	dir := t.TempDir()

	path, err := e.Save(dir, models.ExportFile{Name: "com.app_reviews.csv", Data: []byte("x\n")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "com.app_reviews.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data))
}

func TestCSVExporter_Save_InvalidDirectory(t *testing.T) {
	e := NewCSVExporter(metrics.Nop(), logger.Nop())

	_, err := e.Save(filepath.Join(t.TempDir(), "missing"), models.ExportFile{Name: "a.csv"})
	assert.ErrorIs(t, err, ErrInvalidDirectory)

	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = e.Save(file, models.ExportFile{Name: "a.csv"})
	assert.ErrorIs(t, err, ErrInvalidDirectory)
}

// TestCSVExporter_Save_StripsDirectories verifies that a file name cannot
// escape the export directory.
func TestCSVExporter_Save_StripsDirectories(t *testing.T) {
	e := NewCSVExporter(metrics.Nop(), logger.Nop())
	dir := t.TempDir()

	path, err := e.Save(dir, models.ExportFile{Name: "../../evil_reviews.csv"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "evil_reviews.csv"), path)
}
