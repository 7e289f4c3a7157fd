package api

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// allowed screenshot extensions
var screenshotExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// sanitizeFilename keeps only characters safe to put on disk.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// saveScreenshot stores an uploaded screenshot under dir with a
// random prefix to avoid collisions and returns the stored filename.
func saveScreenshot(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !screenshotExts[ext] {
		return "", fmt.Errorf("unsupported file type %q, allowed: jpg, jpeg, png", ext)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	prefix := strings.ReplaceAll(uuid.New().String(), "-", "")
	filename := prefix + "_" + sanitizeFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return filename, nil
}
