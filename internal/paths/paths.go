// Package paths converts result paths into file URIs and normalized forms.
package paths

import (
	"net/url"
	"path/filepath"
	"strings"

	naverr "github.com/TLATER/mcshader-lsp/internal/errors"
)

// FileURI converts a file path to a file:// URI. Relative paths are resolved
// against the working directory first. Conversion is fallible at the
// interface; an unrepresentable path surfaces as an error instead of
// aborting the request.
func FileURI(path string) (string, error) {
	if path == "" {
		return "", naverr.Newf(naverr.URIInvalid, "empty path")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", naverr.New(naverr.URIInvalid, "cannot resolve path "+path, err)
	}

	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(abs),
	}
	// url.URL renders a bare "file:" prefix for host-less URIs unless the
	// path keeps its leading slash; editors expect file:///.
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String(), nil
}

// NormalizePath normalizes a path by converting backslashes to forward
// slashes. Useful for paths that are already relative but need normalization.
func NormalizePath(path string) string {
	return filepath.ToSlash(path)
}
