package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveImage stores an uploaded image under baseDir/posts with a random
// filename, preserving the original extension, and returns the relative path
// recorded on the post (e.g. "posts/3f2a….png").
func SaveImage(fh *multipart.FileHeader, baseDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	rel := filepath.Join("posts", uuid.NewString()+ext)
	dst := filepath.Join(baseDir, rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", err
	}

	return filepath.ToSlash(rel), nil
}
