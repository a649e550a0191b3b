package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gamebuddy/internal/handlers/dto"
	"gamebuddy/internal/middleware"
)

func newPostTestRouter(t *testing.T, posts *fakePostStore, identity string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewPostHandler(posts, zap.NewNop())
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UsernameKey, identity)
	})
	r.GET("/api/posts", h.ListPosts)
	r.POST("/api/posts", h.CreatePost)
	r.GET("/api/posts/user/:username", h.ListUserPosts)
	r.GET("/api/posts/:id", h.GetPost)
	r.POST("/api/posts/:id/vote", h.ToggleVote)
	return r
}

func postPage(t *testing.T, body []byte) dto.PostPageResponse {
	t.Helper()
	var resp dto.PostPageResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestCreatePost(t *testing.T) {
	posts := newFakePostStore()
	r := newPostTestRouter(t, posts, "alice")

	rec := doJSON(r, http.MethodPost, "/api/posts", `{"game":"Chess","description":"looking for a blitz partner"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.PostResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// author comes from the token identity, not the body
	assert.Equal(t, "alice", resp.User)
	assert.Equal(t, "Chess", resp.Game)
	assert.Empty(t, resp.Votes)
}

func TestCreatePostMissingFields(t *testing.T) {
	r := newPostTestRouter(t, newFakePostStore(), "alice")
	rec := doJSON(r, http.MethodPost, "/api/posts", `{"game":"Chess"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPostsPagination(t *testing.T) {
	posts := newFakePostStore()
	for i := 0; i < 12; i++ {
		_, err := posts.CreatePost("alice", fmt.Sprintf("Game %d", i), "desc")
		require.NoError(t, err)
	}
	r := newPostTestRouter(t, posts, "alice")

	rec := doJSON(r, http.MethodGet, "/api/posts?page=1&limit=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := postPage(t, rec.Body.Bytes())
	assert.Len(t, page.Data, 5)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	// newest first
	assert.Equal(t, "Game 11", page.Data[0].Game)

	rec = doJSON(r, http.MethodGet, "/api/posts?page=3&limit=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page = postPage(t, rec.Body.Bytes())
	assert.Len(t, page.Data, 2)

	// past the last page: empty data, total untouched
	rec = doJSON(r, http.MethodGet, "/api/posts?page=4&limit=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page = postPage(t, rec.Body.Bytes())
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(12), page.Total)
}

func TestListPostsInvalidPagination(t *testing.T) {
	r := newPostTestRouter(t, newFakePostStore(), "alice")

	for _, query := range []string{"page=0", "page=-1", "limit=0", "limit=51", "page=abc", "limit=abc"} {
		t.Run(query, func(t *testing.T) {
			rec := doJSON(r, http.MethodGet, "/api/posts?"+query, "", nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListPostsSearch(t *testing.T) {
	posts := newFakePostStore()
	_, err := posts.CreatePost("alice", "Chess", "d1")
	require.NoError(t, err)
	_, err = posts.CreatePost("bob", "Checkers", "d2")
	require.NoError(t, err)
	_, err = posts.CreatePost("carol", "Go", "d3")
	require.NoError(t, err)

	r := newPostTestRouter(t, posts, "alice")

	// case-insensitive substring on the game name matches both
	rec := doJSON(r, http.MethodGet, "/api/posts?search=che", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := postPage(t, rec.Body.Bytes())
	assert.Equal(t, int64(2), page.Total)

	// a username substring only matches that author's posts
	rec = doJSON(r, http.MethodGet, "/api/posts?search=carol", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page = postPage(t, rec.Body.Bytes())
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Go", page.Data[0].Game)
}

func TestListUserPosts(t *testing.T) {
	posts := newFakePostStore()
	_, err := posts.CreatePost("alice", "Chess", "d1")
	require.NoError(t, err)
	_, err = posts.CreatePost("bob", "Chess", "d2")
	require.NoError(t, err)

	r := newPostTestRouter(t, posts, "alice")
	rec := doJSON(r, http.MethodGet, "/api/posts/user/bob", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := postPage(t, rec.Body.Bytes())
	require.Len(t, page.Data, 1)
	assert.Equal(t, "bob", page.Data[0].User)
}

func TestGetPost(t *testing.T) {
	posts := newFakePostStore()
	created, err := posts.CreatePost("alice", "Chess", "d1")
	require.NoError(t, err)

	r := newPostTestRouter(t, posts, "alice")

	rec := doJSON(r, http.MethodGet, "/api/posts/"+created.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())

	rec = doJSON(r, http.MethodGet, "/api/posts/not-a-real-id", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleVoteRoundTrip(t *testing.T) {
	posts := newFakePostStore()
	created, err := posts.CreatePost("alice", "Chess", "d1")
	require.NoError(t, err)

	r := newPostTestRouter(t, posts, "bob")
	path := "/api/posts/" + created.ID.String() + "/vote"

	rec := doJSON(r, http.MethodPost, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.VoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Voted)
	assert.Equal(t, 1, resp.VoteCount)

	// second toggle undoes the first
	rec = doJSON(r, http.MethodPost, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Voted)
	assert.Equal(t, 0, resp.VoteCount)
}

func TestToggleVoteUnknownPost(t *testing.T) {
	r := newPostTestRouter(t, newFakePostStore(), "bob")
	rec := doJSON(r, http.MethodPost, "/api/posts/ffffffff-ffff-ffff-ffff-ffffffffffff/vote", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
