package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PostgRESTStore는 Supabase(PostgREST) REST API를 원격 컬렉션으로 사용하는 Store입니다.
type PostgRESTStore struct {
	baseURL string
	apiKey  string
	timeout time.Duration // 0이면 제한 없음
}

// PostgRESTConfig는 PostgRESTStore 설정입니다.
type PostgRESTConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// NewPostgRESTStore는 새 PostgRESTStore를 생성합니다.
func NewPostgRESTStore(cfg PostgRESTConfig) *PostgRESTStore {
	return &PostgRESTStore{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
	}
}

// queryURL은 PostgREST 조회 URL을 만듭니다.
// 예: /rest/v1/portfolio_projects?is_published=eq.true&limit=4&order=sort_order.asc&select=*
func (s *PostgRESTStore) queryURL(q Query) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("select", "*")
	for _, f := range q.Filters {
		params.Add(f.Column, "eq."+formatValue(f.Value))
	}
	if q.OrderBy != "" {
		dir := "desc"
		if q.Ascending {
			dir = "asc"
		}
		params.Set("order", q.OrderBy+"."+dir)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return s.baseURL + "/rest/v1/" + q.Collection + "?" + params.Encode(), nil
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(t)
	}
}

func (s *PostgRESTStore) authorize(a *fiber.Agent) *fiber.Agent {
	a.Set("apikey", s.apiKey)
	a.Set(fiber.HeaderAuthorization, "Bearer "+s.apiKey)
	if s.timeout > 0 {
		a.Timeout(s.timeout)
	}
	return a
}

// Query는 GET 요청 결과(JSON 배열)를 dest에 디코딩합니다.
func (s *PostgRESTStore) Query(ctx context.Context, q Query, dest any) error {
	target, err := s.queryURL(q)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return wrap("query", q.Collection, err)
	}

	a := s.authorize(fiber.Get(target))
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return wrap("query", q.Collection, errors.Join(errs...))
	}
	if code < 200 || code > 299 {
		return wrap("query", q.Collection, statusError(code, body))
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return wrap("query", q.Collection, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Insert는 POST 요청으로 레코드 1건을 추가합니다.
func (s *PostgRESTStore) Insert(ctx context.Context, collection string, row Row) error {
	if err := validateInsert(collection, row); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return wrap("insert", collection, err)
	}

	a := s.authorize(fiber.Post(s.baseURL + "/rest/v1/" + collection))
	a.Set("Prefer", "return=minimal")
	a.JSON([]Row{row})

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return wrap("insert", collection, errors.Join(errs...))
	}
	if code < 200 || code > 299 {
		return wrap("insert", collection, statusError(code, body))
	}
	return nil
}

// maxErrorBody는 에러 메시지에 남기는 응답 본문 길이(문자 수)입니다.
const maxErrorBody = 200

func statusError(code int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if r := []rune(msg); len(r) > maxErrorBody {
		msg = string(r[:maxErrorBody])
	}
	return fmt.Errorf("unexpected status %d: %s", code, msg)
}
