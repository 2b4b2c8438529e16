package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"pousada-api/internal/pkg/clock"
	"pousada-api/internal/pkg/errs"
)

// GCSStorage stores objects in a Google Cloud Storage bucket. Public objects
// get a world-readable ACL and a stable URL, private ones a V4 signed URL.
type GCSStorage struct {
	client    *gcs.Client
	bucket    string
	urlExpiry time.Duration
	clk       clock.Clock
}

func NewGCSStorage(ctx context.Context, bucket, credentialsFile string, urlExpiry time.Duration, clk clock.Clock) (*GCSStorage, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create gcs client")
	}
	return &GCSStorage{client: client, bucket: bucket, urlExpiry: urlExpiry, clk: clk}, nil
}

func (s *GCSStorage) Upload(ctx context.Context, r io.Reader, privateURL, filename string, publicRead bool, maxSizeInBytes int64) (string, error) {
	obj := s.client.Bucket(s.bucket).Object(privateURL)

	src := r
	if maxSizeInBytes > 0 {
		src = io.LimitReader(r, maxSizeInBytes+1)
	}

	w := obj.NewWriter(ctx)
	written, err := io.Copy(w, src)
	if err != nil {
		_ = w.Close()
		return "", errs.Wrap(err, "failed to upload object")
	}
	if maxSizeInBytes > 0 && written > maxSizeInBytes {
		_ = w.Close()
		_ = obj.Delete(ctx)
		return "", ErrFileTooLarge
	}
	if err := w.Close(); err != nil {
		return "", errs.Wrap(err, "failed to finalize upload")
	}

	if publicRead {
		if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
			return "", errs.Wrap(err, "failed to set public acl")
		}
	}

	return s.DownloadURL(ctx, filename, privateURL, publicRead)
}

func (s *GCSStorage) DownloadURL(_ context.Context, _ string, privateURL string, publicRead bool) (string, error) {
	if publicRead {
		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, privateURL), nil
	}

	url, err := s.client.Bucket(s.bucket).SignedURL(privateURL, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  "GET",
		Expires: s.clk.Now().Add(s.urlExpiry),
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to sign download url")
	}
	return url, nil
}
