package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashShownOnce(t *testing.T) {
	store := session.New()
	app := fiber.New()
	app.Use(Flash(store))
	app.Post("/set", func(c *fiber.Ctx) error {
		if err := SetFlash(c, store, FlashSuccess, "저장되었습니다."); err != nil {
			return err
		}
		return c.Redirect("/show")
	})
	app.Get("/show", func(c *fiber.Ctx) error {
		return c.SendString(FlashMessage(c, FlashSuccess))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/set", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	cookie := resp.Header.Get(fiber.HeaderSetCookie)
	require.NotEmpty(t, cookie)
	cookie = strings.SplitN(cookie, ";", 2)[0]

	show := func() string {
		req := httptest.NewRequest(http.MethodGet, "/show", nil)
		req.Header.Set(fiber.HeaderCookie, cookie)
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}

	assert.Equal(t, "저장되었습니다.", show())
	assert.Empty(t, show())
}

func TestFlashMessageMissing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		first := FlashMessage(c, FlashSuccess)
		c.Locals(FlashSuccess, 42)
		return c.SendString(first + "|" + FlashMessage(c, FlashSuccess))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "|", string(body))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFormatter(&log.JSONFormatter{})
	t.Cleanup(func() {
		log.SetOutput(io.Discard)
		log.SetFormatter(&log.TextFormatter{})
	})

	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "upstream") })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"path":"/ok"`)
	assert.Contains(t, buf.String(), `"status":200`)

	buf.Reset()
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"status":502`)
	assert.Contains(t, buf.String(), `"level":"error"`)
}
