package media

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"openbook/internal/common"
	"openbook/internal/dbmongo"

	"github.com/gorilla/mux"
)

// ImageDownloader is the slice of the GridFS store the server needs.
type ImageDownloader interface {
	DownloadImage(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.ImageFile, error)
}

// HTTPServer streams stored images over HTTP.
type HTTPServer struct {
	storage ImageDownloader
}

func NewHTTPServer(storage ImageDownloader) *HTTPServer {
	return &HTTPServer{storage: storage}
}

func (s *HTTPServer) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/media/{fileId}", s.serveImage).Methods("GET")
	router.HandleFunc("/health", s.health).Methods("GET")
	return router
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router().ServeHTTP(w, r)
}

func (s *HTTPServer) serveImage(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	reader, file, err := s.storage.DownloadImage(r.Context(), fileID)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer reader.Close()

	contentType := file.MimeType
	if contentType == "" {
		contentType = common.ImageContentType(file.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", file.Size))
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, reader); err != nil {
		log.Printf("Error streaming image %s: %v", fileID, err)
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("media server is healthy"))
}
