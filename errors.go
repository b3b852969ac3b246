package docpress

import "errors"

// Sentinel errors for pipeline and driver operations.
var (
	ErrMissingRepoID  = errors.New("image repository identifier not set")
	ErrMissingSource  = errors.New("source directory not set")
	ErrDocFileMissing = errors.New("document file not found")
	ErrRenderFailed   = errors.New("failed to render document")
	ErrSiteGeneration = errors.New("site generation failed")
	ErrSyncFailed     = errors.New("sync failed")
	ErrIndexScan      = errors.New("index scan failed")
)
