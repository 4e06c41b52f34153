package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"bookstore/internal/config"
	"bookstore/internal/models/response_models"
	"bookstore/pkg/utils"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

const (
	bookCoverDir     = "books"
	maxBaseNameChars = 40
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

type UploadServiceInterface interface {
	SaveBookCover(ctx context.Context, file *multipart.FileHeader) (*response_models.UploadResponse, error)
	MaxBytes() int64
}

type UploadService struct {
	rootDir  string
	maxBytes int64
	now      func() time.Time
	logger   *zap.Logger
}

func NewUploadService(cfg config.Upload, logger *zap.Logger) (UploadServiceInterface, error) {
	if err := os.MkdirAll(filepath.Join(cfg.Dir, bookCoverDir), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadService{
		rootDir:  cfg.Dir,
		maxBytes: cfg.MaxBytes,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func (u *UploadService) MaxBytes() int64 { return u.maxBytes }

// SaveBookCover checks size and sniffed content type, then writes the file
// under <root>/books with a collision-resistant name.
func (u *UploadService) SaveBookCover(ctx context.Context, file *multipart.FileHeader) (*response_models.UploadResponse, error) {
	if file == nil {
		return nil, utils.ErrNoFileUploaded
	}
	if file.Size > u.maxBytes {
		return nil, utils.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open upload: %v", utils.ErrStorageFailure, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, u.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read upload: %v", utils.ErrStorageFailure, err)
	}
	if int64(len(data)) > u.maxBytes {
		return nil, utils.ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return nil, utils.ErrUnsupportedFileType
	}

	filename, err := u.uniqueName(file.Filename, mtype.Extension())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrStorageFailure, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dst := filepath.Join(u.rootDir, bookCoverDir, filename)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return nil, fmt.Errorf("%w: write upload: %v", utils.ErrStorageFailure, err)
	}

	u.logger.Info("book cover stored", zap.String("filename", filename), zap.Int("bytes", len(data)))

	return &response_models.UploadResponse{
		Filename: filename,
		URL:      "/uploads/" + bookCoverDir + "/" + filename,
	}, nil
}

// uniqueName takes the extension from the sniffed type, never from the
// client filename.
func (u *UploadService) uniqueName(original, ext string) (string, error) {
	base := SanitizeBaseName(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))

	suffix, err := utils.GenerateSecureToken(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%s%s", base, u.now().UnixMilli(), suffix, ext), nil
}

// SanitizeBaseName replaces everything outside [A-Za-z0-9_-] with '_' and
// keeps at most 40 characters.
func SanitizeBaseName(name string) string {
	safe := unsafeNameChars.ReplaceAllString(name, "_")
	if len(safe) > maxBaseNameChars {
		safe = safe[:maxBaseNameChars]
	}
	if safe == "" {
		safe = "cover"
	}
	return safe
}
