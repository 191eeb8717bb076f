package filemgr

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFilename(t *testing.T) {
	name := MakeFilename("My Photo.PNG")
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+\.png$`), name)

	// extensionless input still yields a usable name
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+$`), MakeFilename("noext"))
}

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:5000")
	require.NoError(t, err)

	content := "not really a png"
	err = store.Save(context.Background(), "123-456.png", strings.NewReader(content), "image/png")
	require.NoError(t, err)

	saved, err := os.ReadFile(filepath.Join(dir, "123-456.png"))
	require.NoError(t, err)
	assert.Equal(t, content, string(saved))
}

func TestDiskStoreSaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:5000")
	require.NoError(t, err)

	err = store.Save(context.Background(), "../escape.txt", strings.NewReader("x"), "text/plain")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(filepath.Dir(dir), "escape.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDiskStorePublicURL(t *testing.T) {
	store := &DiskStore{Dir: "/tmp/up", BaseURL: "http://localhost:5000"}

	url, path := store.PublicURL("123-456.png")
	assert.Equal(t, "/media/123-456.png", path)
	assert.Equal(t, "http://localhost:5000/media/123-456.png", url)
}

func TestDiskStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewDiskStore(dir, "")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
