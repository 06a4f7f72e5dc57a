package guestbook

import (
	"time"

	"portfolio/internal/feed"
	"portfolio/internal/remote"
)

// Entry는 'portfolio_guestbook' 테이블의 스키마입니다.
type Entry struct {
	ID            remote.ID `json:"id" db:"id"`
	AuthorName    string    `json:"author_name" db:"author_name"`
	Message       string    `json:"message" db:"message"`
	Occupation    *string   `json:"occupation" db:"occupation"` // NULL 허용
	Email         *string   `json:"email" db:"email"`           // NULL 허용
	IsEmailPublic bool      `json:"is_email_public" db:"is_email_public"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// PublicEmail은 공개 설정된 경우에만 이메일을 반환합니다.
func (e Entry) PublicEmail() string {
	if !e.IsEmailPublic || e.Email == nil {
		return ""
	}
	return *e.Email
}

// OccupationText는 소속/직업을 반환합니다. (없으면 빈 문자열)
func (e Entry) OccupationText() string {
	if e.Occupation == nil {
		return ""
	}
	return *e.Occupation
}

// EntryView는 외부(JSON API)로 내보내는 형태입니다. 비공개 이메일은 빠집니다.
type EntryView struct {
	ID         remote.ID `json:"id"`
	AuthorName string    `json:"author_name"`
	Message    string    `json:"message"`
	Occupation string    `json:"occupation,omitempty"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// View는 Entry를 EntryView로 변환합니다.
func (e Entry) View() EntryView {
	return EntryView{
		ID:         e.ID,
		AuthorName: e.AuthorName,
		Message:    e.Message,
		Occupation: e.OccupationText(),
		Email:      e.PublicEmail(),
		CreatedAt:  e.CreatedAt,
	}
}

// Draft는 방명록 작성 폼 데이터입니다.
type Draft struct {
	AuthorName    string `json:"author_name" form:"author_name"`
	Message       string `json:"message" form:"message"`
	Occupation    string `json:"occupation" form:"occupation"`
	Email         string `json:"email" form:"email"`
	IsEmailPublic bool   `json:"is_email_public" form:"is_email_public"`
}

// Board는 랜딩 페이지의 방명록 영역(폼 + 목록) 렌더링 데이터입니다.
type Board struct {
	Entries []Entry
	Loading bool
	Error   string
	Draft   Draft
	Retry   bool // 목록 조회 실패 시 다시 시도 링크 노출
}

// NewBoard는 스냅샷과 폼 입력값으로 Board를 만듭니다.
func NewBoard(snap feed.Snapshot[Entry], draft Draft) Board {
	return Board{
		Entries: snap.Items,
		Loading: snap.Loading,
		Error:   snap.Error,
		Draft:   draft,
		Retry:   snap.Error == feed.FetchFailedMessage,
	}
}
