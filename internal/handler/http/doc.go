// Package http implements the browser front end of the review fetcher.
//
// It serves a single HTML page that drives one shared session through search,
// selection, preview and CSV download, plus the version and metrics endpoints.
// Request tracing, access logging and response compression are handled here
// as middleware before requests reach the session.
package http
