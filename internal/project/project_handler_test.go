package project

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/feed"
	"portfolio/internal/remote"
	"portfolio/internal/site"
	"portfolio/web"
)

func newApp(store remote.Store) *fiber.App {
	h := NewProjectHandler(NewService(NewStore(store, ""), 0), site.NewContent(site.Profile{}))
	app := fiber.New(fiber.Config{Views: web.NewEngine()})
	app.Get("/projects", h.HandleShowProjectsPage)
	app.Get("/api/projects", h.HandleListProjects)
	return app
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}

func TestHandleListProjects(t *testing.T) {
	store := remote.NewMemoryStore()
	seedProjects(store)
	app := newApp(store)

	tests := []struct {
		target string
		want   []int
	}{
		{target: "/api/projects", want: []int{1, 2, 3, 4, 5}},
		{target: "/api/projects?limit=2", want: []int{1, 2}},
		{target: "/api/projects?limit=-1", want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var out ListResponse
			require.NoError(t, json.Unmarshal(readBody(t, resp), &out))
			assert.Equal(t, tt.want, sortOrders(out.Projects))
			assert.False(t, out.IsLoading)
		})
	}
}

func TestHandleListProjectsFailure(t *testing.T) {
	store := remote.NewMemoryStore()
	store.FailQueries(errors.New("down"))
	app := newApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var out ListResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &out))
	assert.Equal(t, feed.FetchFailedMessage, out.ErrorMessage)
	assert.NotNil(t, out.Projects)
}

func TestHandleShowProjectsPage(t *testing.T) {
	store := remote.NewMemoryStore()
	seedProjects(store)
	store.Seed(DefaultCollection, remote.Row{"id": 7, "title": "broken", "thumbnail_url": "", "is_published": true, "sort_order": 6})
	app := newApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/projects", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := string(readBody(t, resp))
	assert.Contains(t, body, "p1")
	assert.Contains(t, body, "p5")
	assert.NotContains(t, body, "unpublished-item")
	assert.Contains(t, body, `data-image-state="errored"`)
	assert.Contains(t, body, ImageFallbackText)
	assert.Contains(t, body, `data-image-state="not-loaded"`)
}

func TestHandleShowProjectsPageStates(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		app := newApp(remote.NewMemoryStore())
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/projects", nil))
		require.NoError(t, err)
		assert.Contains(t, string(readBody(t, resp)), "아직 공개된 프로젝트가 없습니다.")
	})

	t.Run("failure", func(t *testing.T) {
		store := remote.NewMemoryStore()
		store.FailQueries(errors.New("down"))
		app := newApp(store)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/projects", nil))
		require.NoError(t, err)
		body := string(readBody(t, resp))
		assert.Contains(t, body, feed.FetchFailedMessage)
		assert.NotContains(t, body, "아직 공개된 프로젝트가 없습니다.")
	})
}
