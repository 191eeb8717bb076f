// Package filemgr provides the media storage backend: local disk during
// development, an object-storage bucket in production.
package filemgr

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store is the capability the upload handler is written against.
type Store interface {
	// Save writes the file bytes under the given name.
	Save(ctx context.Context, name string, r io.Reader, contentType string) error
	// PublicURL returns the absolute URL and the canonical /media path for
	// a stored name.
	PublicURL(name string) (url string, path string)
}

// MakeFilename generates `<unixmillis>-<rand><ext>` names, matching the
// convention existing documents already reference.
func MakeFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
}

// UploadsDir returns the writable uploads directory: /tmp/uploads in
// production (the only writable path on the deployment platform), a local
// folder otherwise.
func UploadsDir() string {
	if IsProd() {
		return filepath.Join(os.TempDir(), "uploads")
	}
	return "./uploads"
}

func IsProd() bool {
	return os.Getenv("APP_ENV") == "production"
}
