package remote

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidQuery는 컬렉션/컬럼 이름이 식별자 규칙에 맞지 않을 때 반환됩니다.
var ErrInvalidQuery = errors.New("remote: invalid query")

// (테이블/컬럼 이름은 SQL, URL에 그대로 들어가므로 식별자만 허용)
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Filter는 'column = value' 조건 하나입니다.
type Filter struct {
	Column string
	Value  any
}

// Query는 원격 컬렉션 조회 파라미터입니다.
// Limit이 0 이하이면 개수 제한이 없습니다.
type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    string
	Ascending  bool
	Limit      int
}

// Row는 INSERT 페이로드입니다. (컬럼 → 값, nil은 NULL)
type Row map[string]any

// Store는 원격 저장소(BaaS, MySQL, 메모리)가 구현하는 계약입니다.
type Store interface {
	// Query는 정렬된 결과를 dest(슬라이스 포인터)에 디코딩합니다.
	Query(ctx context.Context, q Query, dest any) error
	// Insert는 컬렉션에 레코드 1건을 추가합니다.
	Insert(ctx context.Context, collection string, row Row) error
}

// Error는 원격 저장소 호출 실패를 감쌉니다.
type Error struct {
	Op         string // "query" 또는 "insert"
	Collection string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Collection: collection, Err: err}
}

// Validate는 쿼리의 식별자를 검사합니다.
func (q Query) Validate() error {
	if !identPattern.MatchString(q.Collection) {
		return fmt.Errorf("%w: collection %q", ErrInvalidQuery, q.Collection)
	}
	if q.OrderBy != "" && !identPattern.MatchString(q.OrderBy) {
		return fmt.Errorf("%w: order column %q", ErrInvalidQuery, q.OrderBy)
	}
	for _, f := range q.Filters {
		if !identPattern.MatchString(f.Column) {
			return fmt.Errorf("%w: filter column %q", ErrInvalidQuery, f.Column)
		}
	}
	return nil
}

func validateInsert(collection string, row Row) error {
	if !identPattern.MatchString(collection) {
		return fmt.Errorf("%w: collection %q", ErrInvalidQuery, collection)
	}
	if len(row) == 0 {
		return fmt.Errorf("%w: empty row", ErrInvalidQuery)
	}
	for col := range row {
		if !identPattern.MatchString(col) {
			return fmt.Errorf("%w: column %q", ErrInvalidQuery, col)
		}
	}
	return nil
}
