package feed

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"openbook/internal/common"
	"openbook/internal/config"
	"openbook/internal/dbmongo"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ImageUploader is the slice of the GridFS store the handler needs.
type ImageUploader interface {
	UploadImage(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*dbmongo.ImageFile, error)
}

// Handler wires the timeline, post and like endpoints to the feed service.
type Handler struct {
	service   FeedService
	images    ImageUploader
	presenter *Presenter
}

func NewHandler(service FeedService, images ImageUploader, cnf *config.Config) *Handler {
	return &Handler{
		service: service,
		images:  images,
		presenter: &Presenter{
			AppBaseURL:   cnf.Server.AppBaseURL,
			MediaBaseURL: cnf.Server.MediaBaseURL,
		},
	}
}

// RegisterRoutes mounts the authenticated feed endpoints.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/posts", h.StorePost).Methods("POST")
	r.HandleFunc("/posts", h.Timeline).Methods("GET")
	r.HandleFunc("/posts/{id:[0-9]+}/like", h.LikePost).Methods("POST")
	r.HandleFunc("/users/{id:[0-9]+}/posts", h.UserPosts).Methods("GET")
}

type storePostBody struct {
	Body string `json:"body"`
}

// StorePost accepts a JSON body, or a multipart form when an image is
// attached.
func (h *Handler) StorePost(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "user not authenticated")
		return
	}

	var body string
	var image *PostImage

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			common.WriteError(w, http.StatusBadRequest, "Bad Request", "invalid multipart form")
			return
		}
		body = r.FormValue("body")

		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()

			mimeType := header.Header.Get("Content-Type")
			if !common.IsSupportedImageType(mimeType) {
				common.WriteValidationError(w, map[string][]string{
					"image": {"The image must be a jpeg, png, gif or webp file."},
				})
				return
			}

			// Dimensions are required whenever an image is attached.
			meta := map[string][]string{}
			width, err := strconv.Atoi(r.FormValue("width"))
			if err != nil || width <= 0 {
				meta["width"] = []string{"The width field is required."}
			}
			height, err := strconv.Atoi(r.FormValue("height"))
			if err != nil || height <= 0 {
				meta["height"] = []string{"The height field is required."}
			}
			if len(meta) > 0 {
				common.WriteValidationError(w, meta)
				return
			}

			storedName := uuid.New().String() + filepath.Ext(header.Filename)
			uploaded, err := h.images.UploadImage(r.Context(), storedName, mimeType, strconv.FormatUint(actorID, 10), file)
			if err != nil {
				common.WriteError(w, http.StatusInternalServerError, "Server Error", "failed to store image")
				return
			}

			image = &PostImage{ImageID: uploaded.ID, Width: width, Height: height}
		}
	} else {
		var req storePostBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(w, http.StatusBadRequest, "Bad Request", "invalid request body")
			return
		}
		body = req.Body
	}

	if body == "" {
		common.WriteValidationError(w, map[string][]string{
			"body": {"The body field is required."},
		})
		return
	}

	post, err := h.service.CreatePost(r.Context(), actorID, body, image)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, h.presenter.PostDocument(post, actorID))
}

func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "user not authenticated")
		return
	}

	posts, err := h.service.GetTimeline(r.Context(), actorID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, h.presenter.PostCollectionDocument(posts, actorID))
}

func (h *Handler) UserPosts(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "user not authenticated")
		return
	}

	ownerID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusNotFound, "User Not Found", "Unable to locate the user with the given information")
		return
	}

	posts, err := h.service.GetUserPosts(r.Context(), ownerID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, h.presenter.PostCollectionDocument(posts, actorID))
}

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "user not authenticated")
		return
	}

	postID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusNotFound, "Post Not Found", "Unable to locate the post with the given information")
		return
	}

	likes, err := h.service.LikePost(r.Context(), actorID, postID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, h.presenter.LikeCollectionDocument(likes, postID))
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		common.WriteError(w, http.StatusNotFound, "Post Not Found", "Unable to locate the post with the given information")
	default:
		common.WriteError(w, http.StatusInternalServerError, "Server Error", "something went wrong")
	}
}
