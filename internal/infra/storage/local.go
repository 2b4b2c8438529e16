package storage

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"pousada-api/internal/pkg/errs"
)

// LocalStorage stores objects under a root directory and serves them back
// through the API's own download endpoint.
type LocalStorage struct {
	root       string
	backendURL string
}

func NewLocalStorage(root, backendURL string) (*LocalStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve storage root")
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create storage root")
	}
	return &LocalStorage{root: abs, backendURL: backendURL}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, r io.Reader, privateURL, filename string, _ bool, maxSizeInBytes int64) (string, error) {
	target, err := s.Resolve(privateURL)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", errs.Wrap(err, "failed to create upload directory")
	}

	src := r
	if maxSizeInBytes > 0 {
		src = io.LimitReader(r, maxSizeInBytes+1)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", errs.Wrap(err, "failed to create file")
	}

	written, err := io.Copy(f, src)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		return "", errs.Wrap(err, "failed to write file")
	}
	if maxSizeInBytes > 0 && written > maxSizeInBytes {
		_ = os.Remove(target)
		return "", ErrFileTooLarge
	}

	return s.DownloadURL(ctx, filename, privateURL, false)
}

func (s *LocalStorage) DownloadURL(_ context.Context, filename, privateURL string, _ bool) (string, error) {
	q := url.Values{}
	q.Set("privateUrl", privateURL)
	q.Set("filename", filename)
	return s.backendURL + "/api/file/download?" + q.Encode(), nil
}

// Resolve maps a private URL to an absolute path, rejecting anything that
// escapes the storage root.
func (s *LocalStorage) Resolve(privateURL string) (string, error) {
	target := filepath.Join(s.root, filepath.FromSlash(privateURL))
	target = filepath.Clean(target)

	if !strings.HasPrefix(target, s.root+string(os.PathSeparator)) {
		return "", errs.Mark(ErrPathOutsideRoot, errs.ErrForbidden)
	}

	return target, nil
}
