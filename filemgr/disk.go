package filemgr

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gedo/utils"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// DiskStore writes uploads to a local directory and serves them via the
// router's static file handler.
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("creating uploads dir: %w", err)
	}
	return &DiskStore{Dir: dir, BaseURL: baseURL}, nil
}

func (s *DiskStore) Save(ctx context.Context, name string, r io.Reader, contentType string) error {
	path := filepath.Join(s.Dir, utils.SanitizeFilename(name))
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return err
	}

	if strings.HasPrefix(contentType, "image/") && contentType != "image/svg+xml" {
		s.writeThumb(path)
	}
	return nil
}

// writeThumb renders a 320px-wide thumbnail next to the original. Failures
// are ignored: the full image still serves.
func (s *DiskStore) writeThumb(path string) {
	img, err := imaging.Open(path)
	if err != nil {
		return
	}
	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
	ext := filepath.Ext(path)
	thumbPath := strings.TrimSuffix(path, ext) + ".thumb.jpg"
	_ = imaging.Save(thumb, thumbPath, imaging.JPEGQuality(80))
}

func (s *DiskStore) PublicURL(name string) (string, string) {
	mediaPath := "/media/" + name
	return s.BaseURL + mediaPath, mediaPath
}
