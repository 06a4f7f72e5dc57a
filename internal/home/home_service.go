package home

import (
	"context"

	"golang.org/x/sync/errgroup" // (방명록/프로젝트 조회를 병렬로 처리하기 위함)

	"portfolio/internal/guestbook"
	"portfolio/internal/project"
)

// LandingData는 랜딩 페이지('/')에 전달될 데이터 구조체입니다.
type LandingData struct {
	Featured  project.Gallery // 대표 프로젝트 (개수 제한)
	Guestbook guestbook.Board // 방명록 폼 + 목록
}

// Service는 랜딩 페이지 데이터 조립을 담당합니다.
// (guestbook, project 두 서비스에 의존합니다)
type Service struct {
	guestbookService *guestbook.Service
	projectService   *project.Service
}

// NewService는 랜딩 서비스를 생성합니다.
func NewService(gs *guestbook.Service, ps *project.Service) *Service {
	return &Service{
		guestbookService: gs,
		projectService:   ps,
	}
}

// GetLandingData는 방명록과 대표 프로젝트를 병렬로 조회합니다.
// 각 목록은 독립적으로 실패하며(각자 에러 문구), 에러를 반환하지 않습니다.
func (s *Service) GetLandingData(ctx context.Context) LandingData {
	board := s.guestbookService.NewFeed()
	return s.load(ctx, board)
}

// SubmitEntry는 방명록 폼을 제출합니다.
// 성공하면 리다이렉트할 것이므로 랜딩 데이터를 조회하지 않습니다.
// 실패하면 랜딩 데이터를 조회해 목록, 제출 에러 문구, 입력값을 함께 반환합니다.
func (s *Service) SubmitEntry(ctx context.Context, draft guestbook.Draft) (LandingData, guestbook.SubmitResult) {
	res := s.guestbookService.NewFeed().Submit(ctx, draft)
	if res.Submitted() {
		return LandingData{}, res
	}

	data := s.load(ctx, s.guestbookService.NewFeed())
	data.Guestbook.Error = res.Snapshot.Error
	data.Guestbook.Draft = res.Draft
	data.Guestbook.Retry = false
	return data, res
}

func (s *Service) load(ctx context.Context, board *guestbook.Feed) LandingData {
	var data LandingData
	var eg errgroup.Group

	// 고루틴 1: 대표 프로젝트 조회
	eg.Go(func() error {
		data.Featured = project.NewGalleryView(s.projectService.NewFeatured().FetchAll(ctx))
		return nil
	})

	// 고루틴 2: 방명록 목록 조회
	eg.Go(func() error {
		data.Guestbook = guestbook.NewBoard(board.FetchAll(ctx), board.Draft())
		return nil
	})

	_ = eg.Wait() // (두 고루틴 모두 nil 반환, 실패는 각 스냅샷에 남음)
	return data
}
