// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PreviewRow is the reduced on-screen projection of a [Review].
// Response is nil when there is no developer reply.
type PreviewRow struct {
	Date     string
	Review   string
	Rating   int
	Response *string
}

// ExportRow is the full projection of a [Review] written to the CSV file.
// ResponseDate and Response are nil when there is no developer reply.
type ExportRow struct {
	Date         string
	Review       string
	Rating       int
	ResponseDate *string
	Response     *string
}

// ExportHeader is the CSV header, in column order.
var ExportHeader = []string{"Date", "Review", "Rating", "Response_date", "Response"}

// PreviewHeader is the preview table header, in column order.
var PreviewHeader = []string{"Date", "Review", "Rating", "Response"}

// ExportFile is a finished export ready to be written or downloaded.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}
