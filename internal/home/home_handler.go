package home

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus"

	"portfolio/internal/guestbook"
	"portfolio/internal/middleware"
	"portfolio/internal/site"
)

// SubmittedMessage는 방명록 등록 성공 후 리다이렉트된 페이지에 표시됩니다.
const SubmittedMessage = "방명록이 등록되었습니다."

// invalidFormMessage는 폼 파싱 자체가 실패했을 때의 문구입니다.
const invalidFormMessage = "입력 값이 올바르지 않습니다."

// HomeHandler는 랜딩 페이지 관련 핸들러입니다.
type HomeHandler struct {
	service      *Service
	content      *site.Content
	sessionStore *session.Store
}

// NewHomeHandler는 새 핸들러를 생성합니다.
func NewHomeHandler(service *Service, content *site.Content, sessionStore *session.Store) *HomeHandler {
	return &HomeHandler{
		service:      service,
		content:      content,
		sessionStore: sessionStore,
	}
}

func (h *HomeHandler) render(c *fiber.Ctx, data LandingData) error {
	return c.Render("home", fiber.Map{
		"Title":        h.content.Profile.Name,
		"Site":         h.content,
		"Active":       "/",
		"Featured":     data.Featured,
		"Guestbook":    data.Guestbook,
		"FlashSuccess": middleware.FlashMessage(c, middleware.FlashSuccess),
	}, "layout")
}

// HandleShowHome은 'GET /' 요청을 처리합니다.
func (h *HomeHandler) HandleShowHome(c *fiber.Ctx) error {
	return h.render(c, h.service.GetLandingData(c.UserContext()))
}

// HandleShowAbout은 'GET /about' 요청을 처리합니다. (랜딩 페이지의 About 섹션으로 이동)
func (h *HomeHandler) HandleShowAbout(c *fiber.Ctx) error {
	return c.Redirect("/#" + h.content.About.ID)
}

// HandleSubmitGuestbook은 'POST /guestbook' (폼) 요청을 처리합니다.
func (h *HomeHandler) HandleSubmitGuestbook(c *fiber.Ctx) error {
	// 1. 폼 파싱
	var draft guestbook.Draft
	if err := c.BodyParser(&draft); err != nil {
		log.Warnf("방명록 폼 파싱 실패: %v", err)
		data := h.service.GetLandingData(c.UserContext())
		data.Guestbook.Error = invalidFormMessage
		return h.render(c.Status(fiber.StatusBadRequest), data)
	}

	// 2. 제출
	data, res := h.service.SubmitEntry(c.UserContext(), draft)

	// 3. 성공: 플래시 + 리다이렉트 (새로고침 시 재등록 방지)
	if res.Submitted() {
		if err := middleware.SetFlash(c, h.sessionStore, middleware.FlashSuccess, SubmittedMessage); err != nil {
			log.Warnf("플래시 메시지 저장 실패: %v", err)
		}
		return c.Redirect("/#guestbook")
	}

	// 4. 실패: 입력값을 유지한 채 다시 렌더링
	status := fiber.StatusBadGateway
	if errors.Is(res.Err, guestbook.ErrMessageRequired) {
		status = fiber.StatusBadRequest
	}
	return h.render(c.Status(status), data)
}
