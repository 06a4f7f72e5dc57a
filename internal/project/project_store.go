package project

import (
	"context"

	"portfolio/internal/feed"
	"portfolio/internal/remote"
)

// DefaultCollection은 프로젝트 컬렉션(테이블) 이름입니다.
const DefaultCollection = "portfolio_projects"

// Store는 프로젝트 컬렉션 조회를 담당합니다. (등록은 외부에서 수행)
type Store struct {
	remote     remote.Store
	collection string
}

// NewStore는 새 Store를 생성합니다. collection이 비어 있으면 기본 이름을 씁니다.
func NewStore(rs remote.Store, collection string) *Store {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Store{remote: rs, collection: collection}
}

// PublishedQuery는 공개된 프로젝트를 sort_order 오름차순으로 조회합니다.
// limit이 0 이하이면 전체입니다.
func (s *Store) PublishedQuery(limit int) remote.Query {
	return remote.Query{
		Collection: s.collection,
		Filters:    []remote.Filter{{Column: "is_published", Value: true}},
		OrderBy:    "sort_order",
		Ascending:  true,
		Limit:      limit,
	}
}

// NewCollection은 프로젝트 목록용 feed.Collection을 만듭니다.
func (s *Store) NewCollection(limit int) *feed.Collection[Project] {
	return feed.NewCollection[Project](s.remote, s.PublishedQuery(limit))
}

// Probe는 공개 프로젝트 1건을 조회해 원격 저장소가 응답하는지 확인합니다.
func (s *Store) Probe(ctx context.Context) error {
	var rows []Project
	return s.remote.Query(ctx, s.PublishedQuery(1), &rows)
}
