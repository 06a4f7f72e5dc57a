package project

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/feed"
	"portfolio/internal/site"
)

// ProjectHandler는 프로젝트 관련 핸들러입니다.
type ProjectHandler struct {
	service *Service
	content *site.Content
}

// NewProjectHandler는 새 핸들러를 생성합니다.
func NewProjectHandler(service *Service, content *site.Content) *ProjectHandler {
	return &ProjectHandler{service: service, content: content}
}

// HandleShowProjectsPage는 'GET /projects' 요청을 처리합니다.
func (h *ProjectHandler) HandleShowProjectsPage(c *fiber.Ctx) error {
	gallery := h.service.LoadGallery(c.UserContext())

	return c.Render("projects", fiber.Map{
		"Title":   h.content.Profile.Name + " | Projects",
		"Site":    h.content,
		"Active":  "/projects",
		"Gallery": gallery,
	}, "layout")
}

// ListResponse는 (목록, 로딩 여부, 에러 메시지) JSON 응답입니다.
type ListResponse struct {
	Projects     []Project `json:"projects"`
	IsLoading    bool      `json:"isLoading"`
	ErrorMessage string    `json:"errorMessage"`
}

// HandleListProjects는 'GET /api/projects?limit=N' 요청을 처리합니다.
func (h *ProjectHandler) HandleListProjects(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}

	snap := h.service.store.NewCollection(limit).FetchAll(c.UserContext())
	status := fiber.StatusOK
	if snap.State == feed.StateFailure {
		status = fiber.StatusBadGateway
	}
	return c.Status(status).JSON(ListResponse{
		Projects:     snap.Items,
		IsLoading:    snap.Loading,
		ErrorMessage: snap.Error,
	})
}
