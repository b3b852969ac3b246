package readme

import "errors"

// Sentinel errors for hosted-API operations.
var (
	ErrRequestFailed   = errors.New("request failed")
	ErrDocNotFound     = errors.New("document not found")
	ErrCategoryCreate  = errors.New("failed to create category")
	ErrDocCreate       = errors.New("failed to create doc")
	ErrDocUpdate       = errors.New("failed to update doc")
	ErrVersionCreate   = errors.New("failed to create version")
	ErrVersionStable   = errors.New("failed to make version stable")
	ErrNoStableVersion = errors.New("no stable version found")
	ErrDecodeResponse  = errors.New("failed to decode response")
)
