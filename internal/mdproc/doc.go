// Package mdproc implements the Markdown rewriting passes.
//
// Each pass is a pure string transformation over a document body:
//   - snippet inclusion and CSV table rendering
//   - image path and cross-document link rewriting
//   - callout (admonition) conversion
//   - video embed generation
//   - code highlighting and math fence preservation
//   - HTML sanitization
//
// The root docpress package composes these passes per output target.
// The generic Markdown-to-HTML step (goldmark) is also here, invoked as a
// black box; mdproc never parses Markdown structure beyond the anchored
// patterns in patterns.go.
package mdproc
