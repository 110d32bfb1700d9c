package service

import "errors"

var (
	ErrUnknownListing   = errors.New("listing is not part of the current search results")
	ErrNoSelection      = errors.New("no app selected")
	ErrNothingToExport  = errors.New("nothing to export")
	ErrInvalidDirectory = errors.New("invalid export directory")
)
