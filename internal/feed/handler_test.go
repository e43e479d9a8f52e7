package feed

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

// newTestRouter serves the feed routes with uid injected in place of the auth
// middleware.
func newTestRouter(h *Handler, uid uint64) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
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

func newHandlerMocks(t *testing.T) (*MockFeedService, *MockImageUploader, *Handler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := NewMockFeedService(ctrl)
	images := NewMockImageUploader(ctrl)
	return svc, images, NewHandler(svc, images, testConfig())
}

func TestHandler_StorePost(t *testing.T) {
	t.Run("text post", func(t *testing.T) {
		svc, _, h := newHandlerMocks(t)
		router := newTestRouter(h, 1)

		svc.EXPECT().CreatePost(gomock.Any(), uint64(1), "Testings Body", nil).
			Return(&dbmysql.Post{
				ID:        5,
				UserID:    1,
				Body:      "Testings Body",
				CreatedAt: time.Now(),
				User:      &dbmysql.User{UserID: 1, Name: "Alice"},
			}, nil)

		rec := doJSON(t, router, "POST", "/api/posts", map[string]interface{}{"body": "Testings Body"})
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "posts", data["type"])
		assert.Equal(t, float64(5), data["post_id"])

		attrs := data["attributes"].(map[string]interface{})
		assert.Equal(t, "Testings Body", attrs["body"])
		assert.Nil(t, attrs["image"])

		postedBy := attrs["posted_by"].(map[string]interface{})["data"].(map[string]interface{})
		assert.Equal(t, "Alice", postedBy["attributes"].(map[string]interface{})["name"])

		assert.Equal(t, "http://localhost:8000/posts/5", body["links"].(map[string]interface{})["self"])
	})

	t.Run("body is required", func(t *testing.T) {
		_, _, h := newHandlerMocks(t)
		router := newTestRouter(h, 1)

		rec := doJSON(t, router, "POST", "/api/posts", map[string]interface{}{})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		meta := decodeBody(t, rec)["errors"].(map[string]interface{})["meta"].(map[string]interface{})
		assert.Contains(t, meta, "body")
	})

	t.Run("post with image", func(t *testing.T) {
		svc, images, h := newHandlerMocks(t)
		router := newTestRouter(h, 1)

		imageID := "64b0c8f2e1a2b3c4d5e6f7a8"
		images.EXPECT().
			UploadImage(gomock.Any(), gomock.Any(), "image/png", "1", gomock.Any()).
			Return(&dbmongo.ImageFile{ID: imageID}, nil)
		svc.EXPECT().
			CreatePost(gomock.Any(), uint64(1), "Sunset", &PostImage{ImageID: imageID, Width: 640, Height: 480}).
			Return(&dbmysql.Post{
				ID:        7,
				UserID:    1,
				Body:      "Sunset",
				ImageID:   &imageID,
				CreatedAt: time.Now(),
				User:      &dbmysql.User{UserID: 1, Name: "Alice"},
			}, nil)

		buf, contentType := multipartPostForm(t, map[string]string{
			"body":   "Sunset",
			"width":  "640",
			"height": "480",
		}, true)
		req := httptest.NewRequest("POST", "/api/posts", buf)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		attrs := decodeBody(t, rec)["data"].(map[string]interface{})["attributes"].(map[string]interface{})
		assert.Equal(t, "http://localhost:8080/media/"+imageID, attrs["image"])
	})

	t.Run("image requires dimensions", func(t *testing.T) {
		_, _, h := newHandlerMocks(t)
		router := newTestRouter(h, 1)

		buf, contentType := multipartPostForm(t, map[string]string{"body": "Sunset"}, true)
		req := httptest.NewRequest("POST", "/api/posts", buf)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		meta := decodeBody(t, rec)["errors"].(map[string]interface{})["meta"].(map[string]interface{})
		assert.Contains(t, meta, "width")
		assert.Contains(t, meta, "height")
	})
}

func multipartPostForm(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if withImage {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="image"; filename="sunset.png"`)
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

func TestHandler_Timeline(t *testing.T) {
	svc, _, h := newHandlerMocks(t)
	router := newTestRouter(h, 1)

	imageID := "64b0c8f2e1a2b3c4d5e6f7a8"
	posted := time.Now().Add(-24 * time.Hour)
	svc.EXPECT().GetTimeline(gomock.Any(), uint64(1)).Return([]dbmysql.Post{
		{
			ID:        20,
			UserID:    2,
			Body:      "with image",
			ImageID:   &imageID,
			CreatedAt: posted,
			User:      &dbmysql.User{UserID: 2, Name: "Bob"},
			Likes: []dbmysql.Like{
				{ID: 1, UserID: 1, PostID: 20},
				{ID: 2, UserID: 2, PostID: 20},
			},
		},
		{
			ID:        10,
			UserID:    1,
			Body:      "older",
			CreatedAt: posted,
			User:      &dbmysql.User{UserID: 1, Name: "Alice"},
		},
	}, nil)

	rec := doJSON(t, router, "GET", "/api/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	items := body["data"].([]interface{})
	require.Len(t, items, 2)

	first := items[0].(map[string]interface{})["data"].(map[string]interface{})
	assert.Equal(t, "posts", first["type"])
	assert.Equal(t, float64(20), first["post_id"])

	attrs := first["attributes"].(map[string]interface{})
	assert.Equal(t, "with image", attrs["body"])
	assert.Equal(t, "http://localhost:8080/media/"+imageID, attrs["image"])
	assert.Equal(t, "1 day ago", attrs["posted_at"])

	likes := attrs["likes"].(map[string]interface{})
	assert.Equal(t, float64(2), likes["like_count"])
	assert.Equal(t, true, likes["user_likes_post"])
	likeItems := likes["data"].([]interface{})
	require.Len(t, likeItems, 2)
	likeData := likeItems[0].(map[string]interface{})["data"].(map[string]interface{})
	assert.Equal(t, "likes", likeData["type"])
	assert.Equal(t, float64(1), likeData["like_id"])

	second := items[1].(map[string]interface{})["data"].(map[string]interface{})
	secondLikes := second["attributes"].(map[string]interface{})["likes"].(map[string]interface{})
	assert.Equal(t, float64(0), secondLikes["like_count"])
	assert.Equal(t, false, secondLikes["user_likes_post"])

	assert.Equal(t, "http://localhost:8000/posts", body["links"].(map[string]interface{})["self"])
}

func TestHandler_Timeline_Empty(t *testing.T) {
	svc, _, h := newHandlerMocks(t)
	router := newTestRouter(h, 1)

	svc.EXPECT().GetTimeline(gomock.Any(), uint64(1)).Return(nil, nil)

	rec := doJSON(t, router, "GET", "/api/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Empty(t, body["data"])
	require.NotNil(t, body["data"])
}

func TestHandler_UserPosts(t *testing.T) {
	svc, _, h := newHandlerMocks(t)
	router := newTestRouter(h, 1)

	svc.EXPECT().GetUserPosts(gomock.Any(), uint64(2)).Return([]dbmysql.Post{
		{ID: 30, UserID: 2, Body: "from bob", User: &dbmysql.User{UserID: 2, Name: "Bob"}},
	}, nil)

	rec := doJSON(t, router, "GET", "/api/users/2/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, items, 1)
	data := items[0].(map[string]interface{})["data"].(map[string]interface{})
	assert.Equal(t, float64(30), data["post_id"])
}

func TestHandler_LikePost(t *testing.T) {
	t.Run("likes collection returned", func(t *testing.T) {
		svc, _, h := newHandlerMocks(t)
		router := newTestRouter(h, 1)

		svc.EXPECT().LikePost(gomock.Any(), uint64(1), uint64(123)).Return([]dbmysql.Like{
			{ID: 1, UserID: 1, PostID: 123},
		}, nil)

		rec := doJSON(t, router, "POST", "/api/posts/123/like", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		items := body["data"].([]interface{})
		require.Len(t, items, 1)

		item := items[0].(map[string]interface{})
		likeData := item["data"].(map[string]interface{})
		assert.Equal(t, "likes", likeData["type"])
		assert.Equal(t, float64(1), likeData["like_id"])
		assert.Equal(t, "http://localhost:8000/posts/123", item["links"].(map[string]interface{})["self"])

		assert.Equal(t, "http://localhost:8000/posts", body["links"].(map[string]interface{})["self"])
	})

	t.Run("post does not exist", func(t *testing.T) {
		svc, _, h := newHandlerMocks(t)
		router := newTestRouter(h, 1)

		svc.EXPECT().LikePost(gomock.Any(), uint64(1), uint64(999)).Return(nil, ErrPostNotFound)

		rec := doJSON(t, router, "POST", "/api/posts/999/like", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		errs := decodeBody(t, rec)["errors"].(map[string]interface{})
		assert.Equal(t, "Post Not Found", errs["title"])
		assert.Equal(t, "Unable to locate the post with the given information", errs["detail"])
	})
}
