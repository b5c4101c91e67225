package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-payment-system/internal/logger"
)

// receiptFileStorage is the local filesystem implementation of
// [ReceiptStorage]. All receipts live flat inside dir.
type receiptFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewReceiptFileStorage constructs a [ReceiptStorage] rooted at dir.
// The directory is created when it does not exist yet.
func NewReceiptFileStorage(dir string, logger *logger.Logger) (ReceiptStorage, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving upload directory %q: %w", dir, err)
	}

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory %q: %w", absDir, err)
	}

	logger.Debug().Str("upload_dir", absDir).Msg("creating receipt file storage")
	return &receiptFileStorage{
		dir:    absDir,
		logger: logger,
	}, nil
}

// Save streams r into dir/fileName and returns the absolute path of the
// written file. A partially written file is removed on failure.
func (s *receiptFileStorage) Save(ctx context.Context, fileName string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	path, err := s.path(fileName)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrReceiptNotSaved, err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*receiptFileStorage.Save").Str("path", path).Msg("failed to create receipt file")
		return "", fmt.Errorf("%w: %w", ErrReceiptNotSaved, err)
	}

	written, copyErr := io.Copy(file, r)
	closeErr := file.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		log.Err(err).Str("func", "*receiptFileStorage.Save").Str("path", path).Msg("failed to write receipt file")
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %w", ErrReceiptNotSaved, err)
	}

	log.Debug().Str("path", path).Int64("bytes", written).Msg("receipt saved")
	return path, nil
}

// Remove deletes dir/fileName. A file that is already gone is not an error.
func (s *receiptFileStorage) Remove(ctx context.Context, fileName string) error {
	log := logger.FromContext(ctx)

	path, err := s.path(fileName)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Err(err).Str("func", "*receiptFileStorage.Remove").Str("path", path).Msg("failed to remove receipt file")
		return fmt.Errorf("error removing receipt file: %w", err)
	}

	return nil
}

// path resolves fileName inside dir, rejecting names that contain
// directories.
func (s *receiptFileStorage) path(fileName string) (string, error) {
	if fileName == "" || fileName == "." || fileName == ".." || filepath.Base(fileName) != fileName {
		return "", fmt.Errorf("%w: %q", ErrInvalidReceiptName, fileName)
	}

	return filepath.Join(s.dir, fileName), nil
}
