package mdproc

import "errors"

// Sentinel errors for the rewriting passes.
var (
	ErrInvalidAlign   = errors.New("invalid alignment value")
	ErrEmptyTable     = errors.New("table file has no rows")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrNoFrontMatter  = errors.New("no front matter found in document")
)
