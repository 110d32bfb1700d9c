package service

import (
	"time"

	"github.com/MKhiriev/go-review-fetcher/models"
)

// DateLayout renders review and response dates as dd/mm/yy.
const DateLayout = "02/01/06"

// ToPreviewRows projects reviews to the on-screen table, keeping order.
func ToPreviewRows(reviews []models.Review) []models.PreviewRow {
	rows := make([]models.PreviewRow, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, models.PreviewRow{
			Date:     formatDate(r.PostedAt),
			Review:   r.Content,
			Rating:   r.Rating,
			Response: responseText(r),
		})
	}
	return rows
}

// ToExportRows projects reviews to CSV rows, keeping order.
func ToExportRows(reviews []models.Review) []models.ExportRow {
	rows := make([]models.ExportRow, 0, len(reviews))
	for _, r := range reviews {
		row := models.ExportRow{
			Date:     formatDate(r.PostedAt),
			Review:   r.Content,
			Rating:   r.Rating,
			Response: responseText(r),
		}
		if r.RespondedAt != nil {
			d := formatDate(*r.RespondedAt)
			row.ResponseDate = &d
		}
		rows = append(rows, row)
	}
	return rows
}

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func responseText(r models.Review) *string {
	if !r.HasResponse() {
		return nil
	}
	text := *r.ResponseContent
	return &text
}
