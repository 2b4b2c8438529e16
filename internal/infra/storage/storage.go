package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrFileTooLarge     = errors.New("file exceeds the maximum allowed size")
	ErrPathOutsideRoot  = errors.New("resolved path escapes the storage root")
	ErrBackendUnhealthy = errors.New("storage backend unavailable")
)

// FileStorage is the boundary to an object store. privateURL is the path of
// the object relative to the backend's root or bucket; filename is the
// display name embedded in download URLs.
type FileStorage interface {
	Upload(ctx context.Context, r io.Reader, privateURL, filename string, publicRead bool, maxSizeInBytes int64) (string, error)
	DownloadURL(ctx context.Context, filename, privateURL string, publicRead bool) (string, error)
}
