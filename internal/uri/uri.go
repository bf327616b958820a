// Package uri renders picked paths as file URIs.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// GenerateFileURI generates a file URI for a path. Relative paths are
// resolved against the working directory.
// Uses the absolute path format: file:///absolute/path/to/file
func GenerateFileURI(path string) string {
	absolutePath := path
	if abs, err := filepath.Abs(path); err == nil {
		absolutePath = abs
	}
	absolutePath = filepath.ToSlash(absolutePath)

	// URI encode the path, but keep slashes as slashes
	parts := strings.Split(absolutePath, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	encodedPath := strings.Join(parts, "/")

	// Remove leading slash since we add file:/// prefix
	encodedPath = strings.TrimPrefix(encodedPath, "/")

	return "file:///" + encodedPath
}
