package mdproc

import "regexp"

// Precompiled matchers for the constructs the passes rewrite. Each is
// anchored to its syntactic terminator so replacements never consume
// trailing prose.
var (
	// !snippet[path/to/file.md]
	reSnippet = regexp.MustCompile(`!snippet\[(.*?)\]`)

	// !table[path/to/file.csv]
	reCSVTable = regexp.MustCompile(`!table\[(.+?)\]`)

	// ![alt](src) - src may carry a #key=value&... style suffix
	reImage = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

	// ../figures/sub/path.png with one to five leading ../ segments
	reFigurePath = regexp.MustCompile(`(\.\./){1,5}figures/((.+)\.(png|jpg|jpeg|gif|svg|webp))`)

	// raw <img src="..."> tags whose src may embed a figure path
	reImgTag = regexp.MustCompile(`<img\s+[^>]*src="([^"]*)"[^>]*>`)

	// (relative/path.md#fragment) internal document links
	reDocLink = regexp.MustCompile(`\(([\./]*)([\w\-/]+)\.md(#[^)]*)?\)`)

	// [title](https://res.cloudinary.com/<cloud>/video/upload/v<n>/<file>.mp4)
	reCloudinaryVideo = regexp.MustCompile(`(?i)\[(.*?)\]\((https://res\.cloudinary\.com/([^/]+)/video/upload/v(\d+)/([^/]+\.mp4))\)`)

	// [title](https://www.youtube.com/watch?v=ID) or youtu.be/ID
	reYouTubeLink = regexp.MustCompile(`(?i)\[(.*?)\]\((https?://(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})(?:[&?][^\)]*)?)\)`)

	// fenced code block with optional info string, non-greedy body
	reCodeBlock = regexp.MustCompile("(?s)```([^\n]*)\n(.*?)```")

	// [!NOTE] style admonition markers inside blockquotes
	reCalloutMarker = regexp.MustCompile(`\[!(NOTE|TIP|IMPORTANT|WARNING|CAUTION)\]`)
)
