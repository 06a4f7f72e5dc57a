package guestbook

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"portfolio/internal/feed"
)

// GuestbookHandler는 방명록 JSON API 핸들러입니다.
// (랜딩 페이지의 폼 POST는 home 패키지가 처리합니다)
type GuestbookHandler struct {
	service *Service
}

// NewGuestbookHandler는 새 핸들러를 생성합니다.
func NewGuestbookHandler(service *Service) *GuestbookHandler {
	return &GuestbookHandler{service: service}
}

// FeedResponse는 (목록, 로딩 여부, 에러 메시지) JSON 응답입니다.
type FeedResponse struct {
	Entries      []EntryView `json:"entries"`
	IsLoading    bool        `json:"isLoading"`
	ErrorMessage string      `json:"errorMessage"`
}

// NewFeedResponse는 스냅샷을 응답 형태로 변환합니다.
func NewFeedResponse(snap feed.Snapshot[Entry]) FeedResponse {
	views := make([]EntryView, 0, len(snap.Items))
	for _, e := range snap.Items {
		views = append(views, e.View())
	}
	return FeedResponse{
		Entries:      views,
		IsLoading:    snap.Loading,
		ErrorMessage: snap.Error,
	}
}

// HandleListEntries는 'GET /api/guestbook' 요청을 처리합니다.
func (h *GuestbookHandler) HandleListEntries(c *fiber.Ctx) error {
	snap := h.service.NewFeed().FetchAll(c.UserContext())
	status := fiber.StatusOK
	if snap.State == feed.StateFailure {
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(NewFeedResponse(snap))
}

// HandleCreateEntry는 'POST /api/guestbook' 요청을 처리합니다.
func (h *GuestbookHandler) HandleCreateEntry(c *fiber.Ctx) error {
	var draft Draft
	if err := c.BodyParser(&draft); err != nil {
		log.Warnf("방명록 API 요청 파싱 실패: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(FeedResponse{
			Entries:      []EntryView{},
			ErrorMessage: "입력 값이 올바르지 않습니다.",
		})
	}

	res := h.service.NewFeed().Submit(c.UserContext(), draft)
	switch {
	case res.Submitted():
		return c.Status(fiber.StatusCreated).JSON(NewFeedResponse(res.Snapshot))
	case errors.Is(res.Err, ErrMessageRequired):
		return c.Status(fiber.StatusBadRequest).JSON(NewFeedResponse(res.Snapshot))
	default:
		return c.Status(fiber.StatusBadGateway).JSON(NewFeedResponse(res.Snapshot))
	}
}
