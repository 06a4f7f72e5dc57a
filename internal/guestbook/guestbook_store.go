package guestbook

import (
	"context"

	"portfolio/internal/feed"
	"portfolio/internal/remote"
)

// DefaultCollection은 방명록 컬렉션(테이블) 이름입니다.
const DefaultCollection = "portfolio_guestbook"

// Store는 방명록 컬렉션에 대한 원격 저장소 접근을 담당합니다.
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

// ListQuery는 최신순(created_at DESC) 전체 목록 쿼리입니다.
func (s *Store) ListQuery() remote.Query {
	return remote.Query{
		Collection: s.collection,
		OrderBy:    "created_at",
		Ascending:  false,
	}
}

// NewCollection은 방명록 목록용 feed.Collection을 만듭니다.
func (s *Store) NewCollection() *feed.Collection[Entry] {
	return feed.NewCollection[Entry](s.remote, s.ListQuery())
}

// CreateEntry는 정규화된 레코드를 INSERT합니다.
func (s *Store) CreateEntry(ctx context.Context, row remote.Row) error {
	return s.remote.Insert(ctx, s.collection, row)
}
