package remote

import (
	"context"
	"net"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	URI    string
	APIKey string
	Auth   string
	Prefer string
	Body   string
}

// startFakePostgREST는 로컬 포트에 PostgREST 흉내 서버를 띄웁니다.
func startFakePostgREST(t *testing.T, status int, payload string) (string, <-chan capturedRequest) {
	t.Helper()

	captured := make(chan capturedRequest, 4)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.All("/rest/v1/:collection", func(c *fiber.Ctx) error {
		captured <- capturedRequest{
			URI:    c.OriginalURL(),
			APIKey: c.Get("apikey"),
			Auth:   c.Get(fiber.HeaderAuthorization),
			Prefer: c.Get("Prefer"),
			Body:   string(c.Body()),
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(status).SendString(payload)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String(), captured
}

func TestPostgRESTQueryURL(t *testing.T) {
	s := NewPostgRESTStore(PostgRESTConfig{URL: "https://abc.supabase.co/", APIKey: "k"})

	got, err := s.queryURL(Query{
		Collection: "portfolio_projects",
		Filters:    []Filter{{Column: "is_published", Value: true}},
		OrderBy:    "sort_order",
		Ascending:  true,
		Limit:      4,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://abc.supabase.co/rest/v1/portfolio_projects?is_published=eq.true&limit=4&order=sort_order.asc&select=%2A", got)

	got, err = s.queryURL(Query{Collection: "portfolio_guestbook", OrderBy: "created_at"})
	require.NoError(t, err)
	assert.Equal(t, "https://abc.supabase.co/rest/v1/portfolio_guestbook?order=created_at.desc&select=%2A", got)

	_, err = s.queryURL(Query{Collection: "../secrets"})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestPostgRESTStoreQuery(t *testing.T) {
	url, captured := startFakePostgREST(t, 200, `[{"id": 1, "title": "A", "tech_stack": ["Go"], "is_published": true, "sort_order": 1}]`)
	s := NewPostgRESTStore(PostgRESTConfig{URL: url, APIKey: "anon-key"})

	var got []testProject
	err := s.Query(context.Background(), Query{Collection: "portfolio_projects", OrderBy: "sort_order", Ascending: true}, &got)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ID("1"), got[0].ID)
	assert.Equal(t, StringList{"Go"}, got[0].TechStack)

	req := <-captured
	assert.Equal(t, "/rest/v1/portfolio_projects?order=sort_order.asc&select=%2A", req.URI)
	assert.Equal(t, "anon-key", req.APIKey)
	assert.Equal(t, "Bearer anon-key", req.Auth)
}

func TestPostgRESTStoreInsert(t *testing.T) {
	url, captured := startFakePostgREST(t, 201, ``)
	s := NewPostgRESTStore(PostgRESTConfig{URL: url, APIKey: "anon-key"})

	err := s.Insert(context.Background(), "portfolio_guestbook", Row{"message": "hi", "email": nil})
	require.NoError(t, err)

	req := <-captured
	assert.Equal(t, "/rest/v1/portfolio_guestbook", req.URI)
	assert.Equal(t, "return=minimal", req.Prefer)
	assert.JSONEq(t, `[{"message": "hi", "email": null}]`, req.Body)
}

func TestPostgRESTStoreErrorStatus(t *testing.T) {
	url, _ := startFakePostgREST(t, 401, `{"message":"Invalid API key"}`)
	s := NewPostgRESTStore(PostgRESTConfig{URL: url, APIKey: "wrong"})

	var got []testProject
	err := s.Query(context.Background(), Query{Collection: "portfolio_projects"}, &got)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "query", rerr.Op)
	assert.Contains(t, err.Error(), "401")

	err = s.Insert(context.Background(), "portfolio_guestbook", Row{"message": "hi"})
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "insert", rerr.Op)
}

func TestStatusErrorTruncatesOnRuneBoundary(t *testing.T) {
	body := strings.Repeat("가", maxErrorBody+50)

	err := statusError(500, []byte(body))

	msg := err.Error()
	assert.True(t, utf8.ValidString(msg))
	assert.Equal(t, "unexpected status 500: "+strings.Repeat("가", maxErrorBody), msg)

	assert.Equal(t, "unexpected status 404: not found", statusError(404, []byte(" not found\n")).Error())
}
