package guestbook

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"portfolio/internal/feed"
	"portfolio/internal/remote"
)

const (
	// AnonymousName은 이름을 비워둔 작성자에게 붙는 기본 이름입니다.
	AnonymousName = "익명"
	// SubmitFailedMessage는 등록(INSERT) 실패 시 사용자에게 보여주는 문구입니다.
	SubmitFailedMessage = "메시지 등록에 실패했습니다. 다시 시도해주세요."
)

// ErrMessageRequired는 메시지가 비어 있을 때의 검증 에러입니다. (원격 호출 전 차단)
var ErrMessageRequired = errors.New("메시지를 입력해주세요.")

// notifyTimeout은 비동기 알림 1건에 허용하는 시간입니다.
const notifyTimeout = 10 * time.Second

// Notifier는 새 방명록이 등록되었을 때 호출됩니다.
type Notifier interface {
	NotifyGuestbookEntry(ctx context.Context, row remote.Row) error
}

// Normalize는 폼 데이터를 INSERT 레코드로 변환합니다.
// 메시지가 공백뿐이면 ErrMessageRequired를 반환합니다.
func Normalize(d Draft) (remote.Row, error) {
	message := strings.TrimSpace(d.Message)
	if message == "" {
		return nil, ErrMessageRequired
	}

	author := strings.TrimSpace(d.AuthorName)
	if author == "" {
		author = AnonymousName
	}
	email := nullable(d.Email)

	return remote.Row{
		"author_name":     author,
		"message":         message,
		"occupation":      nullable(d.Occupation),
		"email":           email,
		"is_email_public": d.IsEmailPublic && email != nil, // (이메일이 있을 때만 의미 있음)
	}, nil
}

func nullable(s string) any {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return s
}

// Service는 방명록 기능의 비즈니스 로직을 담당합니다.
type Service struct {
	store    *Store
	notifier Notifier
}

// NewService는 새 Service를 생성합니다. notifier는 nil이어도 됩니다.
func NewService(store *Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// NewFeed는 요청(화면) 하나가 단독으로 쓰는 방명록 피드를 만듭니다.
func (s *Service) NewFeed() *Feed {
	return &Feed{
		Collection: s.store.NewCollection(),
		store:      s.store,
		notifier:   s.notifier,
	}
}

// SubmitResult는 Submit 호출 결과입니다.
type SubmitResult struct {
	Snapshot feed.Snapshot[Entry]
	Draft    Draft // 실패 시 입력값 유지, 성공 시 빈 폼
	Err      error // ErrMessageRequired 또는 원격 에러
}

// Submitted는 INSERT까지 성공했는지 여부입니다.
func (r SubmitResult) Submitted() bool { return r.Err == nil }

// Feed는 방명록 목록 + 작성 폼 상태입니다.
type Feed struct {
	*feed.Collection[Entry]
	store    *Store
	notifier Notifier

	mu    sync.Mutex
	draft Draft
}

// Draft는 현재 폼 입력값을 반환합니다.
func (f *Feed) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Feed) setDraft(d Draft) {
	f.mu.Lock()
	f.draft = d
	f.mu.Unlock()
}

// Submit은 방명록을 검증/등록하고, 성공하면 폼을 비운 뒤 목록을 다시 불러옵니다.
// 재조회가 실패해도 기존 목록은 유지되고 조회 에러 문구만 남습니다.
func (f *Feed) Submit(ctx context.Context, d Draft) SubmitResult {
	f.setDraft(d)

	// 1. 검증 (원격 호출 없음, 로그 없음)
	row, err := Normalize(d)
	if err != nil {
		f.Fail(err.Error())
		return f.result(err)
	}

	// 2. INSERT
	f.Begin()
	if err := f.store.CreateEntry(ctx, row); err != nil {
		log.Errorf("방명록 등록 실패: %v", err)
		f.Fail(SubmitFailedMessage)
		return f.result(err)
	}
	log.Infof("방명록 등록 성공 (작성자: %s)", row["author_name"])

	// 3. 폼 초기화, 알림, 재조회
	f.setDraft(Draft{})
	f.notify(ctx, row)
	f.FetchAll(ctx)
	return f.result(nil)
}

func (f *Feed) result(err error) SubmitResult {
	return SubmitResult{
		Snapshot: f.Snapshot(),
		Draft:    f.Draft(),
		Err:      err,
	}
}

// notify는 알림을 비동기로 보냅니다. 실패는 로그만 남깁니다.
func (f *Feed) notify(ctx context.Context, row remote.Row) {
	if f.notifier == nil {
		return
	}
	go func() {
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
		if err := f.notifier.NotifyGuestbookEntry(nctx, row); err != nil {
			log.Warnf("방명록 알림 발송 실패: %v", err)
		}
	}()
}
