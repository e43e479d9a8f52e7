package media

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"openbook/internal/dbmongo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackedReader struct {
	io.Reader
	closed bool
}

func (r *trackedReader) Close() error {
	r.closed = true
	return nil
}

type stubDownloader struct {
	reader *trackedReader
	file   *dbmongo.ImageFile
	err    error
}

func (s *stubDownloader) DownloadImage(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.ImageFile, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.reader, s.file, nil
}

func TestHTTPServer_ServeImage(t *testing.T) {
	content := "fake image bytes"
	stub := &stubDownloader{
		reader: &trackedReader{Reader: strings.NewReader(content)},
		file: &dbmongo.ImageFile{
			ID:       "64b0c8f2e1a2b3c4d5e6f7a8",
			Filename: "avatar.png",
			Size:     int64(len(content)),
			MimeType: "image/png",
		},
	}
	server := NewHTTPServer(stub)

	req := httptest.NewRequest("GET", "/media/64b0c8f2e1a2b3c4d5e6f7a8", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, content, rec.Body.String())
	assert.True(t, stub.reader.closed, "download stream must be closed after streaming")
}

func TestHTTPServer_ServeImage_ContentTypeFallback(t *testing.T) {
	stub := &stubDownloader{
		reader: &trackedReader{Reader: strings.NewReader("x")},
		file:   &dbmongo.ImageFile{Filename: "cover.jpg", Size: 1},
	}
	server := NewHTTPServer(stub)

	req := httptest.NewRequest("GET", "/media/64b0c8f2e1a2b3c4d5e6f7a8", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
}

func TestHTTPServer_ServeImage_NotFound(t *testing.T) {
	server := NewHTTPServer(&stubDownloader{err: errors.New("no such file")})

	req := httptest.NewRequest("GET", "/media/unknown", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, 404, rec.Code)
}

func TestHTTPServer_Health(t *testing.T) {
	server := NewHTTPServer(&stubDownloader{})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
}
