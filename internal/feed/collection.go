package feed

import (
	"context"

	log "github.com/sirupsen/logrus"

	"portfolio/internal/remote"
)

// FetchFailedMessage는 목록 조회 실패 시 사용자에게 보여주는 고정 문구입니다.
const FetchFailedMessage = "목록을 불러오지 못했습니다. 잠시 후 다시 시도해주세요."

// Collection은 원격 컬렉션 하나를 고정된 쿼리로 불러오는 뷰 모델입니다.
type Collection[T any] struct {
	Lifecycle[T]
	store remote.Store
	query remote.Query
}

// NewCollection은 새 Collection을 생성합니다. (상태: Idle)
func NewCollection[T any](store remote.Store, q remote.Query) *Collection[T] {
	return &Collection[T]{store: store, query: q}
}

// Query는 이 컬렉션이 사용하는 쿼리를 반환합니다.
func (c *Collection[T]) Query() remote.Query {
	return c.query
}

// FetchAll은 목록 전체를 다시 불러옵니다.
// 실패해도 에러를 반환하지 않고 Failure 상태와 고정 문구만 남깁니다.
func (c *Collection[T]) FetchAll(ctx context.Context) Snapshot[T] {
	c.Begin()

	var items []T
	if err := c.store.Query(ctx, c.query, &items); err != nil {
		log.Errorf("원격 목록 조회 실패 (%s): %v", c.query.Collection, err)
		c.Fail(FetchFailedMessage)
		return c.Snapshot()
	}

	c.Succeed(items)
	return c.Snapshot()
}

// Retry는 사용자가 다시 시도할 때 호출합니다.
func (c *Collection[T]) Retry(ctx context.Context) Snapshot[T] {
	return c.FetchAll(ctx)
}
