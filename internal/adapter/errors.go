package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrUpstreamUnavailable = errors.New("store unavailable")
	ErrMalformedResponse   = errors.New("malformed store response")
)
