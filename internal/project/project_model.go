package project

import (
	"net/url"
	"sync"

	"portfolio/internal/remote"
)

// Project는 'portfolio_projects' 테이블의 스키마입니다.
type Project struct {
	ID           remote.ID         `json:"id" db:"id"`
	Title        string            `json:"title" db:"title"`
	Description  string            `json:"description" db:"description"`
	ThumbnailURL string            `json:"thumbnail_url" db:"thumbnail_url"`
	DetailURL    string            `json:"detail_url" db:"detail_url"`
	TechStack    remote.StringList `json:"tech_stack" db:"tech_stack"` // JSON 배열 컬럼
	IsPublished  bool              `json:"is_published" db:"is_published"`
	SortOrder    int               `json:"sort_order" db:"sort_order"`
}

// ImageState는 카드 썸네일의 로딩 상태입니다.
type ImageState int

const (
	ImageNotLoaded ImageState = iota // 0: 자리표시자 노출
	ImageLoaded                      // 1: 이미지 노출
	ImageErrored                     // 2: "이미지를 불러올 수 없습니다" 문구 노출
)

func (s ImageState) String() string {
	switch s {
	case ImageNotLoaded:
		return "not-loaded"
	case ImageLoaded:
		return "loaded"
	case ImageErrored:
		return "errored"
	}
	return "unknown"
}

// ImageFallbackText는 썸네일 로딩 실패 시 카드에 표시되는 문구입니다.
const ImageFallbackText = "이미지를 불러올 수 없습니다"

// Card는 렌더링되는 프로젝트 카드 1개입니다.
// 이미지 상태는 카드가 새로 만들어질 때(목록 교체)만 초기화됩니다.
type Card struct {
	Project

	mu    sync.Mutex
	image ImageState
}

// NewCards는 목록으로부터 새 카드들을 만듭니다.
// 썸네일 URL이 비었거나 http(s) 절대 URL이 아니면 처음부터 Errored입니다.
func NewCards(projects []Project) []*Card {
	cards := make([]*Card, 0, len(projects))
	for _, p := range projects {
		c := &Card{Project: p}
		if !validImageURL(p.ThumbnailURL) {
			c.image = ImageErrored
		}
		cards = append(cards, c)
	}
	return cards
}

func validImageURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Image는 현재 이미지 상태입니다.
func (c *Card) Image() ImageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.image
}

// MarkLoaded는 load 이벤트를 반영합니다. NotLoaded에서만 전이합니다.
func (c *Card) MarkLoaded() ImageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.image == ImageNotLoaded {
		c.image = ImageLoaded
	}
	return c.image
}

// MarkErrored는 error 이벤트를 반영합니다. NotLoaded에서만 전이하며 이후 영구적입니다.
func (c *Card) MarkErrored() ImageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.image == ImageNotLoaded {
		c.image = ImageErrored
	}
	return c.image
}

// ShowPlaceholder, ShowImage, ShowFallback은 템플릿에서 사용합니다.
func (c *Card) ShowPlaceholder() bool { return c.Image() == ImageNotLoaded }
func (c *Card) ShowImage() bool       { return c.Image() != ImageErrored }
func (c *Card) ShowFallback() bool    { return c.Image() == ImageErrored }
