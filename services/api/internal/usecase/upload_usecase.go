package usecase

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"portfolio/pkg/logger"

	"github.com/google/uuid"
)

// imageTypes maps the sniffed content types accepted for upload to the key
// extension they are stored under.
var imageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Uploader is satisfied by both the S3 client and local disk storage.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error)
}

type UploadUseCase interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type uploadUseCase struct {
	uploader Uploader
	maxBytes int64
	logger   *logger.Logger
}

func NewUploadUseCase(uploader Uploader, maxBytes int64, logger *logger.Logger) UploadUseCase {
	return &uploadUseCase{
		uploader: uploader,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

func (uc *uploadUseCase) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if uc.maxBytes > 0 && file.Size > uc.maxBytes {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType, err := sniffContentType(src)
	if err != nil {
		return "", err
	}
	ext, ok := imageTypes[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}

	fileKey := fmt.Sprintf("portfolio/%s%s", uuid.New().String(), ext)
	url, err := uc.uploader.Upload(ctx, fileKey, src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	uc.logger.Info("Uploaded %s (%d bytes) to %s", file.Filename, file.Size, url)
	return url, nil
}

// sniffContentType reads the first bytes of src and rewinds it. The declared
// multipart type and the filename are client input and are not consulted.
func sniffContentType(src io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind file: %w", err)
	}
	return http.DetectContentType(head[:n]), nil
}
