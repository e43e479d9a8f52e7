package user

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"openbook/internal/common"
	"openbook/internal/config"
	"openbook/internal/dbmongo"
	"openbook/internal/dbmysql"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ImageUploader is the slice of the GridFS store the handler needs.
type ImageUploader interface {
	UploadImage(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*dbmongo.ImageFile, error)
}

// Handler wires the REST endpoints for accounts, profiles, friendships and
// profile images to the service layer.
type Handler struct {
	userService       UserService
	friendshipService FriendshipService
	images            ImageUploader
	presenter         *Presenter
}

func NewHandler(userService UserService, friendshipService FriendshipService, images ImageUploader, cnf *config.Config) *Handler {
	return &Handler{
		userService:       userService,
		friendshipService: friendshipService,
		images:            images,
		presenter: &Presenter{
			AppBaseURL:   cnf.Server.AppBaseURL,
			MediaBaseURL: cnf.Server.MediaBaseURL,
		},
	}
}

// RegisterPublicRoutes mounts the endpoints that do not require a token.
func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
}

// RegisterRoutes mounts the authenticated endpoints.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/auth-user", h.AuthUser).Methods("GET")
	r.HandleFunc("/users/{id:[0-9]+}", h.ShowUser).Methods("GET")
	r.HandleFunc("/friend-request", h.SendFriendRequest).Methods("POST")
	r.HandleFunc("/friend-request-response", h.RespondFriendRequest).Methods("POST")
	r.HandleFunc("/friend-request-response/delete", h.IgnoreFriendRequest).Methods("DELETE")
	r.HandleFunc("/user-images", h.StoreUserImage).Methods("POST")
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}

	meta := map[string][]string{}
	if req.Name == "" {
		meta["name"] = []string{"The name field is required."}
	}
	if req.Email == "" {
		meta["email"] = []string{"The email field is required."}
	}
	if req.Password == "" {
		meta["password"] = []string{"The password field is required."}
	}
	if len(meta) > 0 {
		common.WriteValidationError(w, meta)
		return
	}

	user, token, err := h.userService.RegisterUser(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			common.WriteValidationError(w, map[string][]string{
				"email": {"The email has already been taken."},
			})
			return
		}
		common.WriteError(w, http.StatusUnprocessableEntity, "Validation Error", err.Error())
		return
	}

	common.WriteJSON(w, http.StatusCreated, h.authDocument(user.UserID, user.Name, token))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}

	user, token, err := h.userService.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "invalid email or password")
		return
	}

	common.WriteJSON(w, http.StatusOK, h.authDocument(user.UserID, user.Name, token))
}

func (h *Handler) AuthUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "user not authenticated")
		return
	}

	user, err := h.userService.GetProfile(r.Context(), actorID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	profileImage, coverImage, err := h.userService.GetProfileImages(r.Context(), actorID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, h.presenter.UserDocument(user, nil, profileImage, coverImage))
}

// ShowUser renders a profile; the viewer's relationship to the profile owner
// is resolved symmetrically regardless of who originally sent the request.
func (h *Handler) ShowUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "user not authenticated")
		return
	}

	profileID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusNotFound, "User Not Found", "Unable to locate the user with the given information")
		return
	}

	user, err := h.userService.GetProfile(r.Context(), profileID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	var friendship *dbmysql.Friend
	if actorID != profileID {
		friendship, err = h.friendshipService.ResolveFriendship(r.Context(), actorID, profileID)
		if err != nil {
			h.writeDomainError(w, err)
			return
		}
	}

	profileImage, coverImage, err := h.userService.GetProfileImages(r.Context(), profileID)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, h.presenter.UserDocument(user, friendship, profileImage, coverImage))
}

type friendRequestBody struct {
	FriendID uint64 `json:"friend_id"`
}

func (h *Handler) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "user not authenticated")
		return
	}

	var req friendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FriendID == 0 {
		common.WriteValidationError(w, map[string][]string{
			"friend_id": {"The friend id field is required."},
		})
		return
	}

	friend, err := h.friendshipService.SendRequest(r.Context(), actorID, req.FriendID)
	if err != nil {
		if errors.Is(err, ErrCannotFriendSelf) {
			common.WriteValidationError(w, map[string][]string{
				"friend_id": {"You cannot send a friend request to yourself."},
			})
			return
		}
		h.writeDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, h.presenter.FriendRequestDocument(friend))
}

type friendResponseBody struct {
	UserID uint64 `json:"user_id"`
	Status *int   `json:"status"`
}

func (h *Handler) RespondFriendRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "user not authenticated")
		return
	}

	var req friendResponseBody
	err := json.NewDecoder(r.Body).Decode(&req)

	meta := map[string][]string{}
	if err != nil || req.UserID == 0 {
		meta["user_id"] = []string{"The user id field is required."}
	}
	if err != nil || req.Status == nil {
		meta["status"] = []string{"The status field is required."}
	}
	if len(meta) > 0 {
		common.WriteValidationError(w, meta)
		return
	}

	friend, err := h.friendshipService.RespondToRequest(r.Context(), actorID, req.UserID, *req.Status)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, h.presenter.FriendRequestDocument(friend))
}

type friendIgnoreBody struct {
	UserID uint64 `json:"user_id"`
}

func (h *Handler) IgnoreFriendRequest(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "user not authenticated")
		return
	}

	var req friendIgnoreBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
		common.WriteValidationError(w, map[string][]string{
			"user_id": {"The user id field is required."},
		})
		return
	}

	if err := h.friendshipService.IgnoreRequest(r.Context(), actorID, req.UserID); err != nil {
		h.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) StoreUserImage(w http.ResponseWriter, r *http.Request) {
	actorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "Unauthenticated", "user not authenticated")
		return
	}

	if err := r.ParseMultipartForm(16 << 20); err != nil {
		common.WriteError(w, http.StatusBadRequest, "Bad Request", "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	meta := map[string][]string{}
	if err != nil {
		meta["image"] = []string{"The image field is required."}
	} else {
		defer file.Close()
	}

	location := r.FormValue("location")
	if location != "profile" && location != "cover" {
		meta["location"] = []string{"The location field must be profile or cover."}
	}
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

	mimeType := header.Header.Get("Content-Type")
	if !common.IsSupportedImageType(mimeType) {
		common.WriteValidationError(w, map[string][]string{
			"image": {"The image must be a jpeg, png, gif or webp file."},
		})
		return
	}

	storedName := uuid.New().String() + filepath.Ext(header.Filename)
	uploaded, err := h.images.UploadImage(r.Context(), storedName, mimeType, strconv.FormatUint(actorID, 10), file)
	if err != nil {
		common.WriteError(w, http.StatusInternalServerError, "Server Error", "failed to store image")
		return
	}

	image, err := h.userService.SaveUserImage(r.Context(), actorID, uploaded.ID, width, height, location)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, h.presenter.UserImageDocument(image))
}

type authResource struct {
	Type       string         `json:"type"`
	UserID     uint64         `json:"user_id"`
	Attributes authAttributes `json:"attributes"`
}

type authAttributes struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

func (h *Handler) authDocument(userID uint64, name, token string) common.Document {
	return common.Document{
		Data: authResource{
			Type:       "auth-token",
			UserID:     userID,
			Attributes: authAttributes{Name: name, Token: token},
		},
		Links: &common.Links{
			Self: h.presenter.AppBaseURL + "/users/" + strconv.FormatUint(userID, 10),
		},
	}
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		common.WriteError(w, http.StatusNotFound, "User Not Found", "Unable to locate the user with the given information")
	case errors.Is(err, ErrFriendRequestNotFound):
		common.WriteError(w, http.StatusNotFound, "Friend Request Not Found", "Unable to locate the friend request with the given information")
	default:
		common.WriteError(w, http.StatusInternalServerError, "Server Error", "something went wrong")
	}
}
