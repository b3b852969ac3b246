// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Directories and files excluded from markdown discovery. Figures and
// snippets are referenced from documents, never documents themselves.
var (
	DefaultIgnoreDirs  = []string{".git", ".github", "figures", "snippets"}
	DefaultIgnoreFiles = []string{"hierarchy.yaml"}
)

// ImageExtensions lists the file extensions treated as site assets.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}

// ReadText reads a file as UTF-8 text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsImageFile reports whether the filename has a recognized image extension.
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// FindMarkdownFiles walks root and returns paths of all .md files, skipping
// ignored directories and files. Results are in lexical walk order.
func FindMarkdownFiles(root string, ignoreDirs, ignoreFiles []string) ([]string, error) {
	if ignoreDirs == nil {
		ignoreDirs = DefaultIgnoreDirs
	}
	if ignoreFiles == nil {
		ignoreFiles = DefaultIgnoreFiles
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			for _, dir := range ignoreDirs {
				if d.Name() == dir && path != root {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		for _, f := range ignoreFiles {
			if d.Name() == f {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

// CopyFile copies src to dst, creating parent directories as needed.
func CopyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

// WriteText writes content to path, creating parent directories as needed.
func WriteText(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
