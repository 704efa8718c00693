package service

import "errors"

// Sentinel errors shared by the services. Handlers map these to HTTP codes.
var (
	ErrIDRequired          = errors.New("id is required")
	ErrNotFound            = errors.New("record not found")
	ErrInvalidReviewStatus = errors.New("invalid review status")
	ErrSessionIDRequired   = errors.New("session_id is required")
	ErrMessageRequired     = errors.New("message is required")
	ErrReaderNil           = errors.New("reader is nil")

	// ErrProvider wraps chat provider failures so handlers can distinguish
	// them from internal errors without seeing provider details.
	ErrProvider = errors.New("chat provider failure")
)
