// Package gcs converts Cloud Storage object references to public HTTP URLs.
package gcs

import (
	"fmt"
	"strings"
)

const (
	scheme     = "gs://"
	publicBase = "https://storage.googleapis.com/"
)

// StorageURL converts a gs://bucket/object reference to its public HTTP URL.
// The input must contain the gs:// scheme marker; everything after the first
// marker becomes the URL path.
func StorageURL(uri string) (string, error) {
	_, rest, ok := strings.Cut(uri, scheme)
	if !ok {
		return "", fmt.Errorf("gcs: malformed object reference %q: missing %q marker", uri, scheme)
	}

	return publicBase + rest, nil
}
