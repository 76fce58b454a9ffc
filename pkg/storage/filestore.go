package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const PublicPrefix = "/uploads/"

var (
	ErrUnsupportedType = errors.New("only jpg, jpeg, png and pdf files are allowed")
	ErrInvalidKey      = errors.New("invalid storage key")
)

var allowedExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".pdf":  {},
}

// FileStore keeps uploaded campaign files on local disk under a single root.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("upload dir is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) Root() string {
	return s.root
}

func Allowed(filename string) bool {
	_, ok := allowedExt[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Save stores r under a fresh key that keeps the original extension and returns its public path.
func (s *FileStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !Allowed(filename) {
		return "", ErrUnsupportedType
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	f, err := os.OpenFile(filepath.Join(s.root, key), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return PublicPrefix + key, nil
}

// Delete removes a file previously returned by Save. Missing files are not an error.
func (s *FileStore) Delete(ctx context.Context, publicPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := strings.TrimPrefix(publicPath, PublicPrefix)
	if key == "" || key != path.Base(key) || key == "." || key == ".." {
		return ErrInvalidKey
	}
	if err := os.Remove(filepath.Join(s.root, key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
