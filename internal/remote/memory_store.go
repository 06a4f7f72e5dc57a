package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore는 프로세스 내 메모리 Store입니다.
// 로컬 개발(driver: memory)과 테스트 대역으로 사용합니다.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string][]Row
	now    func() time.Time

	failQuery  error
	failInsert error
	queries    int
	inserts    int
}

// NewMemoryStore는 빈 MemoryStore를 생성합니다.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string][]Row),
		now:    time.Now,
	}
}

// Seed는 컬렉션에 레코드를 그대로 추가합니다. (id/created_at 자동 부여 없음)
func (s *MemoryStore) Seed(collection string, rows ...Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		s.tables[collection] = append(s.tables[collection], copyRow(r))
	}
}

// FailQueries는 이후 Query 호출이 err로 실패하도록 합니다. (nil이면 해제)
func (s *MemoryStore) FailQueries(err error) {
	s.mu.Lock()
	s.failQuery = err
	s.mu.Unlock()
}

// FailInserts는 이후 Insert 호출이 err로 실패하도록 합니다. (nil이면 해제)
func (s *MemoryStore) FailInserts(err error) {
	s.mu.Lock()
	s.failInsert = err
	s.mu.Unlock()
}

// Calls는 지금까지의 Query/Insert 호출 횟수를 반환합니다.
func (s *MemoryStore) Calls() (queries, inserts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries, s.inserts
}

// Rows는 컬렉션의 현재 레코드 사본을 저장 순서대로 반환합니다.
func (s *MemoryStore) Rows(collection string) []Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Row, 0, len(s.tables[collection]))
	for _, r := range s.tables[collection] {
		out = append(out, copyRow(r))
	}
	return out
}

// Query는 필터/정렬/제한을 적용한 결과를 dest에 디코딩합니다.
func (s *MemoryStore) Query(ctx context.Context, q Query, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.queries++
	if s.failQuery != nil {
		err := s.failQuery
		s.mu.Unlock()
		return wrap("query", q.Collection, err)
	}
	var matched []Row
	for _, r := range s.tables[q.Collection] {
		if matches(r, q.Filters) {
			matched = append(matched, copyRow(r))
		}
	}
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return wrap("query", q.Collection, err)
	}

	if q.OrderBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			c := compare(matched[i][q.OrderBy], matched[j][q.OrderBy])
			if q.Ascending {
				return c < 0
			}
			return c > 0
		})
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	if matched == nil {
		matched = []Row{}
	}

	// (JSON 왕복으로 PostgREST 응답과 같은 디코딩 경로를 탄다)
	b, err := json.Marshal(matched)
	if err != nil {
		return wrap("query", q.Collection, err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return wrap("query", q.Collection, fmt.Errorf("decode rows: %w", err))
	}
	return nil
}

// Insert는 레코드를 추가하고, 없으면 id와 created_at을 부여합니다.
func (s *MemoryStore) Insert(ctx context.Context, collection string, row Row) error {
	if err := validateInsert(collection, row); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return wrap("insert", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserts++
	if s.failInsert != nil {
		return wrap("insert", collection, s.failInsert)
	}

	r := copyRow(row)
	if _, ok := r["id"]; !ok {
		r["id"] = uuid.NewString()
	}
	if _, ok := r["created_at"]; !ok {
		r["created_at"] = s.now().UTC()
	}
	s.tables[collection] = append(s.tables[collection], r)
	return nil
}

func copyRow(r Row) Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func matches(r Row, filters []Filter) bool {
	for _, f := range filters {
		if compare(r[f.Column], f.Value) != 0 {
			return false
		}
	}
	return true
}

// compare는 정렬 키 두 개를 비교합니다. nil은 항상 가장 작습니다.
func compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}

	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
