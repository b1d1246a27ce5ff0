package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxFileSize   = 5 * 1024 * 1024 // 5 MB
	uploadsDir    = "./uploads"
	staticURLBase = "/uploads"
)

// allowedMimeTypes limits uploads to the image formats the catalog renders.
var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Service saves service images to local disk and returns their public URL.
type Service struct {
	baseDir    string
	staticBase string
}

func NewService(baseDir string) *Service {
	if baseDir == "" {
		baseDir = uploadsDir
	}
	return &Service{baseDir: baseDir, staticBase: staticURLBase}
}

// Save sniffs the MIME type from the file content, writes the file under a
// random name and returns the URL it will be served at.
func (s *Service) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return "", ErrInvalidType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind file: %w", err)
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.staticBase + "/" + name, nil
}
