package project

import (
	"context"

	"portfolio/internal/feed"
)

// DefaultFeaturedLimit은 랜딩 페이지 요약에 노출하는 프로젝트 수입니다.
const DefaultFeaturedLimit = 4

// Service는 'project' 기능의 비즈니스 로직을 담당합니다.
type Service struct {
	store         *Store
	featuredLimit int
}

// NewService는 새 Service를 생성합니다. featuredLimit이 0 이하이면 기본값을 씁니다.
func NewService(store *Store, featuredLimit int) *Service {
	if featuredLimit <= 0 {
		featuredLimit = DefaultFeaturedLimit
	}
	return &Service{store: store, featuredLimit: featuredLimit}
}

// FeaturedLimit은 요약 목록 개수입니다.
func (s *Service) FeaturedLimit() int { return s.featuredLimit }

// NewFeatured는 랜딩 페이지용(개수 제한) 컬렉션을 만듭니다.
func (s *Service) NewFeatured() *feed.Collection[Project] {
	return s.store.NewCollection(s.featuredLimit)
}

// NewGallery는 '/projects' 전체 목록용(제한 없음) 컬렉션을 만듭니다.
func (s *Service) NewGallery() *feed.Collection[Project] {
	return s.store.NewCollection(0)
}

// Gallery는 렌더링 직전의 카드 목록과 상태입니다.
type Gallery struct {
	Cards   []*Card
	Loading bool
	Error   string
}

// NewGalleryView는 스냅샷으로부터 새 카드를 만듭니다.
func NewGalleryView(snap feed.Snapshot[Project]) Gallery {
	return Gallery{
		Cards:   NewCards(snap.Items),
		Loading: snap.Loading,
		Error:   snap.Error,
	}
}

// LoadGallery는 전체 목록을 불러와 카드로 변환합니다.
func (s *Service) LoadGallery(ctx context.Context) Gallery {
	return NewGalleryView(s.NewGallery().FetchAll(ctx))
}
