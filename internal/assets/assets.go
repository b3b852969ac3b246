// Package assets holds the embedded static files written alongside a
// generated site: the base stylesheet and the navigation script.
package assets

import (
	"embed"
	"fmt"
)

//go:embed site/*
var site embed.FS

// Sentinel error for asset lookups.
var ErrAssetNotFound = fmt.Errorf("asset not found")

// Style returns the base site stylesheet.
func Style() string {
	return mustRead("site/style.css")
}

// Script returns the client-side navigation script.
func Script() string {
	return mustRead("site/main.js")
}

// Load returns an embedded asset by relative name, e.g. "style.css".
func Load(name string) (string, error) {
	content, err := site.ReadFile("site/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrAssetNotFound, name)
	}
	return string(content), nil
}

func mustRead(path string) string {
	content, err := site.ReadFile(path)
	if err != nil {
		// Embedded files are compiled in; a miss is a build defect.
		panic(err)
	}
	return string(content)
}
