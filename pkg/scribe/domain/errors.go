package domain

import "errors"

var (
	// ErrUnknownSource the configured caption source is unknown or has no registered backend.
	ErrUnknownSource = errors.New("unknown caption source")
	// ErrCaptionFailed a backend replied with a non-success status (or didn't reply at all).
	ErrCaptionFailed = errors.New("captioning failed")
	// ErrReviewCancelled the user declined the composed message during the refine step.
	ErrReviewCancelled = errors.New("review cancelled")
	// ErrNoImage there is nothing to caption: no file selected, no attachment, no image URL.
	ErrNoImage = errors.New("no image to caption")
)
