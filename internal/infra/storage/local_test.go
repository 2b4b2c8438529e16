//go:build unit

package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Upload(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root, "http://localhost:8080")
	require.NoError(t, err)

	t.Run("stores file under the private url", func(t *testing.T) {
		url, err := s.Upload(context.Background(), strings.NewReader("hello"), "user/avatars/profile/abc/pic.png", "pic.png", true, 1024)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(root, "user", "avatars", "profile", "abc", "pic.png"))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
		assert.Contains(t, url, "/api/file/download?")
		assert.Contains(t, url, "filename=pic.png")
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		_, err := s.Upload(context.Background(), strings.NewReader("too big payload"), "reservation/document/big.pdf", "big.pdf", false, 4)
		assert.True(t, errors.Is(err, ErrFileTooLarge))

		_, statErr := os.Stat(filepath.Join(root, "reservation", "document", "big.pdf"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("rejects path escaping the root", func(t *testing.T) {
		_, err := s.Upload(context.Background(), strings.NewReader("x"), "../outside.txt", "outside.txt", false, 1024)
		assert.True(t, errors.Is(err, ErrPathOutsideRoot))
	})
}

func TestLocalStorage_DownloadURL(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "https://api.example.com")
	require.NoError(t, err)

	url, err := s.DownloadURL(context.Background(), "doc.pdf", "reservation/document/doc.pdf", false)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api/file/download?filename=doc.pdf&privateUrl=reservation%2Fdocument%2Fdoc.pdf", url)
}

func TestLocalStorage_Resolve(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root, "http://localhost:8080")
	require.NoError(t, err)

	t.Run("resolves inside root", func(t *testing.T) {
		p, err := s.Resolve("user/avatars/profile/abc/pic.png")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(p, root))
	})

	t.Run("rejects traversal", func(t *testing.T) {
		_, err := s.Resolve("../../etc/passwd")
		assert.True(t, errors.Is(err, ErrPathOutsideRoot))
	})
}
