// Package docpress converts a tree of Markdown documentation into
// either a static HTML site or documents pushed to a hosted docs
// service.
//
// The core is a pipeline of text-rewriting passes over each document:
// snippet inclusion, CSV table rendering, image and link rewriting,
// video embedding, callout conversion, code highlighting and math
// preservation, followed by Markdown conversion. Every HTML fragment
// spliced into a document is sanitized at the point it is built.
//
// Basic usage:
//
//	p := docpress.NewPipeline(
//		docpress.WithTarget(docpress.TargetStaticSite),
//		docpress.WithSource("docs"),
//	)
//	html, err := p.Render(ctx, doc)
//
// Site generation, hosted sync and index scanning build on the
// pipeline; see SiteGenerator, Syncer and BuildIndex.
package docpress
