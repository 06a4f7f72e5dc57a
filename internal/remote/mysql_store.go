package remote

import (
	"context"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// MySQLStore는 MySQL 테이블을 원격 컬렉션으로 사용하는 Store입니다.
type MySQLStore struct {
	db *sqlx.DB
}

// NewMySQLStore는 새 MySQLStore를 생성합니다.
func NewMySQLStore(db *sqlx.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// buildSelect는 Query를 'SELECT * ... WHERE ... ORDER BY ... LIMIT' 문으로 조립합니다.
func buildSelect(q Query) (string, []any, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}

	sb := squirrel.Select("*").From(q.Collection)
	for _, f := range q.Filters {
		sb = sb.Where(squirrel.Eq{f.Column: f.Value})
	}
	if q.OrderBy != "" {
		dir := " DESC"
		if q.Ascending {
			dir = " ASC"
		}
		sb = sb.OrderBy(q.OrderBy + dir)
	}
	if q.Limit > 0 {
		sb = sb.Limit(uint64(q.Limit))
	}
	return sb.ToSql()
}

// buildInsert는 Row를 INSERT 문으로 조립합니다. (컬럼 순서는 정렬됨)
func buildInsert(collection string, row Row) (string, []any, error) {
	if err := validateInsert(collection, row); err != nil {
		return "", nil, err
	}
	return squirrel.Insert(collection).SetMap(map[string]interface{}(row)).ToSql()
}

// Query는 결과를 dest에 스캔합니다.
func (s *MySQLStore) Query(ctx context.Context, q Query, dest any) error {
	query, args, err := buildSelect(q)
	if err != nil {
		return err
	}
	// (테이블에 모델에 없는 컬럼이 있어도 무시하도록 Unsafe 사용)
	if err := s.db.Unsafe().SelectContext(ctx, dest, query, args...); err != nil {
		return wrap("query", q.Collection, err)
	}
	return nil
}

// Insert는 레코드 1건을 INSERT합니다.
func (s *MySQLStore) Insert(ctx context.Context, collection string, row Row) error {
	query, args, err := buildInsert(collection, row)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return wrap("insert", collection, err)
	}
	return nil
}
