package user

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"openbook/internal/config"
	"openbook/internal/dbmongo"
	"openbook/internal/dbmysql"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			AppBaseURL:   "http://localhost:8000",
			MediaBaseURL: "http://localhost:8080/media/",
		},
	}
}

// newTestRouter serves the authenticated routes with uid injected in place of
// the auth middleware.
func newTestRouter(h *Handler, uid uint64) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	h.RegisterPublicRoutes(api)
	h.RegisterRoutes(api)
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := context.WithValue(req.Context(), "user_id", uid)
		r.ServeHTTP(w, req.WithContext(ctx))
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandler_SendFriendRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSvc := NewMockUserService(ctrl)
	mockFriendSvc := NewMockFriendshipService(ctrl)
	mockImages := NewMockImageUploader(ctrl)
	h := NewHandler(mockUserSvc, mockFriendSvc, mockImages, testConfig())
	router := newTestRouter(h, 1)

	t.Run("pending request returned", func(t *testing.T) {
		mockFriendSvc.EXPECT().SendRequest(gomock.Any(), uint64(1), uint64(2)).
			Return(&dbmysql.Friend{ID: 10, UserID: 1, FriendID: 2}, nil)

		rec := doJSON(t, router, "POST", "/api/friend-request", map[string]interface{}{"friend_id": 2})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "friend-request", data["type"])
		assert.Equal(t, float64(10), data["friend_request_id"])

		attrs := data["attributes"].(map[string]interface{})
		assert.Nil(t, attrs["confirmed_at"])
		assert.Equal(t, float64(1), attrs["user_id"])
		assert.Equal(t, float64(2), attrs["friend_id"])

		links := body["links"].(map[string]interface{})
		assert.Equal(t, "http://localhost:8000/users/2", links["self"])
	})

	t.Run("target user not found", func(t *testing.T) {
		mockFriendSvc.EXPECT().SendRequest(gomock.Any(), uint64(1), uint64(999)).
			Return(nil, ErrUserNotFound)

		rec := doJSON(t, router, "POST", "/api/friend-request", map[string]interface{}{"friend_id": 999})
		require.Equal(t, http.StatusNotFound, rec.Code)

		body := decodeBody(t, rec)
		errs := body["errors"].(map[string]interface{})
		assert.Equal(t, float64(404), errs["code"])
		assert.Equal(t, "User Not Found", errs["title"])
		assert.Equal(t, "Unable to locate the user with the given information", errs["detail"])
	})

	t.Run("friend_id is required", func(t *testing.T) {
		rec := doJSON(t, router, "POST", "/api/friend-request", map[string]interface{}{})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody(t, rec)
		meta := body["errors"].(map[string]interface{})["meta"].(map[string]interface{})
		assert.Contains(t, meta, "friend_id")
	})
}

func TestHandler_RespondFriendRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSvc := NewMockUserService(ctrl)
	mockFriendSvc := NewMockFriendshipService(ctrl)
	mockImages := NewMockImageUploader(ctrl)
	h := NewHandler(mockUserSvc, mockFriendSvc, mockImages, testConfig())
	router := newTestRouter(h, 2)

	t.Run("accepted request is rendered with relative time", func(t *testing.T) {
		now := time.Now().Add(-time.Hour)
		status := 1
		mockFriendSvc.EXPECT().RespondToRequest(gomock.Any(), uint64(2), uint64(1), 1).
			Return(&dbmysql.Friend{ID: 10, UserID: 1, FriendID: 2, ConfirmedAt: &now, Status: &status}, nil)

		rec := doJSON(t, router, "POST", "/api/friend-request-response",
			map[string]interface{}{"user_id": 1, "status": 1})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		attrs := body["data"].(map[string]interface{})["attributes"].(map[string]interface{})
		assert.NotNil(t, attrs["confirmed_at"])
		assert.Contains(t, attrs["confirmed_at"], "ago")
		assert.Equal(t, float64(1), attrs["user_id"])
		assert.Equal(t, float64(2), attrs["friend_id"])
	})

	t.Run("friend request not found", func(t *testing.T) {
		mockFriendSvc.EXPECT().RespondToRequest(gomock.Any(), uint64(2), uint64(123), 1).
			Return(nil, ErrFriendRequestNotFound)

		rec := doJSON(t, router, "POST", "/api/friend-request-response",
			map[string]interface{}{"user_id": 123, "status": 1})
		require.Equal(t, http.StatusNotFound, rec.Code)

		errs := decodeBody(t, rec)["errors"].(map[string]interface{})
		assert.Equal(t, "Friend Request Not Found", errs["title"])
	})

	t.Run("user_id and status are required", func(t *testing.T) {
		rec := doJSON(t, router, "POST", "/api/friend-request-response", map[string]interface{}{})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		meta := decodeBody(t, rec)["errors"].(map[string]interface{})["meta"].(map[string]interface{})
		assert.Contains(t, meta, "user_id")
		assert.Contains(t, meta, "status")
	})
}

func TestHandler_IgnoreFriendRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSvc := NewMockUserService(ctrl)
	mockFriendSvc := NewMockFriendshipService(ctrl)
	mockImages := NewMockImageUploader(ctrl)
	h := NewHandler(mockUserSvc, mockFriendSvc, mockImages, testConfig())
	router := newTestRouter(h, 2)

	t.Run("ignored request returns no content", func(t *testing.T) {
		mockFriendSvc.EXPECT().IgnoreRequest(gomock.Any(), uint64(2), uint64(1)).Return(nil)

		rec := doJSON(t, router, "DELETE", "/api/friend-request-response/delete",
			map[string]interface{}{"user_id": 1})
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})

	t.Run("friend request not found", func(t *testing.T) {
		mockFriendSvc.EXPECT().IgnoreRequest(gomock.Any(), uint64(2), uint64(1)).
			Return(ErrFriendRequestNotFound)

		rec := doJSON(t, router, "DELETE", "/api/friend-request-response/delete",
			map[string]interface{}{"user_id": 1})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("user_id is required", func(t *testing.T) {
		rec := doJSON(t, router, "DELETE", "/api/friend-request-response/delete", map[string]interface{}{})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		meta := decodeBody(t, rec)["errors"].(map[string]interface{})["meta"].(map[string]interface{})
		assert.Contains(t, meta, "user_id")
	})
}

func TestHandler_ShowUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSvc := NewMockUserService(ctrl)
	mockFriendSvc := NewMockFriendshipService(ctrl)
	mockImages := NewMockImageUploader(ctrl)
	h := NewHandler(mockUserSvc, mockFriendSvc, mockImages, testConfig())
	router := newTestRouter(h, 1)

	t.Run("profile with confirmed friendship", func(t *testing.T) {
		confirmed := time.Now().Add(-24 * time.Hour)
		status := 1

		mockUserSvc.EXPECT().GetProfile(gomock.Any(), uint64(2)).
			Return(&dbmysql.User{UserID: 2, Name: "Bob"}, nil)
		mockFriendSvc.EXPECT().ResolveFriendship(gomock.Any(), uint64(1), uint64(2)).
			Return(&dbmysql.Friend{ID: 3, UserID: 1, FriendID: 2, ConfirmedAt: &confirmed, Status: &status}, nil)
		mockUserSvc.EXPECT().GetProfileImages(gomock.Any(), uint64(2)).Return(nil, nil, nil)

		rec := doJSON(t, router, "GET", "/api/users/2", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "users", data["type"])
		assert.Equal(t, float64(2), data["user_id"])

		attrs := data["attributes"].(map[string]interface{})
		assert.Equal(t, "Bob", attrs["name"])

		friendship := attrs["friendship"].(map[string]interface{})
		fdata := friendship["data"].(map[string]interface{})
		assert.Equal(t, float64(3), fdata["friend_request_id"])
		assert.Equal(t, "1 day ago", fdata["attributes"].(map[string]interface{})["confirmed_at"])
	})

	t.Run("inverse friendship resolves the same row", func(t *testing.T) {
		confirmed := time.Now().Add(-24 * time.Hour)
		status := 1

		mockUserSvc.EXPECT().GetProfile(gomock.Any(), uint64(2)).
			Return(&dbmysql.User{UserID: 2, Name: "Bob"}, nil)
		// the row lists user 2 as requester, the viewer as recipient
		mockFriendSvc.EXPECT().ResolveFriendship(gomock.Any(), uint64(1), uint64(2)).
			Return(&dbmysql.Friend{ID: 3, UserID: 2, FriendID: 1, ConfirmedAt: &confirmed, Status: &status}, nil)
		mockUserSvc.EXPECT().GetProfileImages(gomock.Any(), uint64(2)).Return(nil, nil, nil)

		rec := doJSON(t, router, "GET", "/api/users/2", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		attrs := decodeBody(t, rec)["data"].(map[string]interface{})["attributes"].(map[string]interface{})
		fdata := attrs["friendship"].(map[string]interface{})["data"].(map[string]interface{})
		assert.Equal(t, float64(3), fdata["friend_request_id"])
	})

	t.Run("no friendship renders null", func(t *testing.T) {
		mockUserSvc.EXPECT().GetProfile(gomock.Any(), uint64(2)).
			Return(&dbmysql.User{UserID: 2, Name: "Bob"}, nil)
		mockFriendSvc.EXPECT().ResolveFriendship(gomock.Any(), uint64(1), uint64(2)).Return(nil, nil)
		mockUserSvc.EXPECT().GetProfileImages(gomock.Any(), uint64(2)).Return(nil, nil, nil)

		rec := doJSON(t, router, "GET", "/api/users/2", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		attrs := decodeBody(t, rec)["data"].(map[string]interface{})["attributes"].(map[string]interface{})
		assert.Nil(t, attrs["friendship"])
	})

	t.Run("unknown profile", func(t *testing.T) {
		mockUserSvc.EXPECT().GetProfile(gomock.Any(), uint64(999)).Return(nil, ErrUserNotFound)

		rec := doJSON(t, router, "GET", "/api/users/999", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_AuthUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSvc := NewMockUserService(ctrl)
	mockFriendSvc := NewMockFriendshipService(ctrl)
	mockImages := NewMockImageUploader(ctrl)
	h := NewHandler(mockUserSvc, mockFriendSvc, mockImages, testConfig())
	router := newTestRouter(h, 1)

	mockUserSvc.EXPECT().GetProfile(gomock.Any(), uint64(1)).
		Return(&dbmysql.User{UserID: 1, Name: "Alice"}, nil)
	mockUserSvc.EXPECT().GetProfileImages(gomock.Any(), uint64(1)).Return(nil, nil, nil)

	rec := doJSON(t, router, "GET", "/api/auth-user", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["user_id"])
	assert.Equal(t, "Alice", data["attributes"].(map[string]interface{})["name"])
	assert.Equal(t, "http://localhost:8000/users/1", body["links"].(map[string]interface{})["self"])
}

func multipartImageForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if withImage {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="image"; filename="avatar.png"`)
		hdr.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte("png bytes"))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandler_StoreUserImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSvc := NewMockUserService(ctrl)
	mockFriendSvc := NewMockFriendshipService(ctrl)
	mockImages := NewMockImageUploader(ctrl)
	h := NewHandler(mockUserSvc, mockFriendSvc, mockImages, testConfig())
	router := newTestRouter(h, 1)

	t.Run("stores profile image", func(t *testing.T) {
		mockImages.EXPECT().
			UploadImage(gomock.Any(), gomock.Any(), "image/png", "1", gomock.Any()).
			Return(&dbmongo.ImageFile{ID: "64b0c8f2e1a2b3c4d5e6f7a8"}, nil)
		mockUserSvc.EXPECT().
			SaveUserImage(gomock.Any(), uint64(1), "64b0c8f2e1a2b3c4d5e6f7a8", 100, 100, "profile").
			Return(&dbmysql.UserImage{
				ID:       3,
				UserID:   1,
				ImageID:  "64b0c8f2e1a2b3c4d5e6f7a8",
				Width:    100,
				Height:   100,
				Location: "profile",
			}, nil)

		buf, contentType := multipartImageForm(t, map[string]string{
			"location": "profile",
			"width":    "100",
			"height":   "100",
		}, true)
		req := httptest.NewRequest("POST", "/api/user-images", buf)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		data := decodeBody(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "user-images", data["type"])
		attrs := data["attributes"].(map[string]interface{})
		assert.Equal(t, "http://localhost:8080/media/64b0c8f2e1a2b3c4d5e6f7a8", attrs["path"])
		assert.Equal(t, float64(100), attrs["width"])
		assert.Equal(t, "profile", attrs["location"])
	})

	t.Run("width and height are required", func(t *testing.T) {
		buf, contentType := multipartImageForm(t, map[string]string{
			"location": "profile",
		}, true)
		req := httptest.NewRequest("POST", "/api/user-images", buf)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		meta := decodeBody(t, rec)["errors"].(map[string]interface{})["meta"].(map[string]interface{})
		assert.Contains(t, meta, "width")
		assert.Contains(t, meta, "height")
	})

	t.Run("image and location are required", func(t *testing.T) {
		buf, contentType := multipartImageForm(t, map[string]string{
			"width":  "100",
			"height": "100",
		}, false)
		req := httptest.NewRequest("POST", "/api/user-images", buf)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		meta := decodeBody(t, rec)["errors"].(map[string]interface{})["meta"].(map[string]interface{})
		assert.Contains(t, meta, "image")
		assert.Contains(t, meta, "location")
	})
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserSvc := NewMockUserService(ctrl)
	mockFriendSvc := NewMockFriendshipService(ctrl)
	mockImages := NewMockImageUploader(ctrl)
	h := NewHandler(mockUserSvc, mockFriendSvc, mockImages, testConfig())
	router := newTestRouter(h, 0)

	t.Run("success", func(t *testing.T) {
		mockUserSvc.EXPECT().RegisterUser(gomock.Any(), "Alice", "alice@example.com", "password123").
			Return(&dbmysql.User{UserID: 1, Name: "Alice"}, "tok", nil)

		rec := doJSON(t, router, "POST", "/api/register",
			map[string]interface{}{"name": "Alice", "email": "alice@example.com", "password": "password123"})
		require.Equal(t, http.StatusCreated, rec.Code)

		attrs := decodeBody(t, rec)["data"].(map[string]interface{})["attributes"].(map[string]interface{})
		assert.Equal(t, "tok", attrs["token"])
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(t, router, "POST", "/api/register", map[string]interface{}{})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		meta := decodeBody(t, rec)["errors"].(map[string]interface{})["meta"].(map[string]interface{})
		assert.Contains(t, meta, "name")
		assert.Contains(t, meta, "email")
		assert.Contains(t, meta, "password")
	})
}
