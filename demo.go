package main

import (
	"time"

	"portfolio/internal/config"
	"portfolio/internal/guestbook"
	"portfolio/internal/project"
	"portfolio/internal/remote"
)

// seedDemo는 memory 드라이버로 로컬 실행할 때 보여줄 예시 데이터를 넣습니다.
func seedDemo(store *remote.MemoryStore, c config.RemoteConfig) {
	projects := c.ProjectCollection
	if projects == "" {
		projects = project.DefaultCollection
	}
	guestbooks := c.GuestbookCollection
	if guestbooks == "" {
		guestbooks = guestbook.DefaultCollection
	}

	store.Seed(projects,
		remote.Row{
			"id": 1, "title": "Portfolio", "description": "Fiber와 HTML 템플릿으로 만든 포트폴리오 사이트",
			"thumbnail_url": "https://picsum.photos/seed/portfolio/640/360", "detail_url": "https://github.com",
			"tech_stack": []string{"Go", "Fiber", "MySQL"}, "is_published": true, "sort_order": 1,
		},
		remote.Row{
			"id": 2, "title": "Notice Scheduler", "description": "Slack 공지 예약 발송 도구",
			"thumbnail_url": "https://picsum.photos/seed/notice/640/360", "detail_url": "",
			"tech_stack": []string{"Go", "cron", "Slack"}, "is_published": true, "sort_order": 2,
		},
		remote.Row{
			"id": 3, "title": "Draft", "description": "비공개 프로젝트",
			"thumbnail_url": "", "detail_url": "",
			"tech_stack": []string{}, "is_published": false, "sort_order": 3,
		},
	)

	store.Seed(guestbooks, remote.Row{
		"id": 1, "author_name": "익명", "message": "사이트 잘 보고 갑니다!",
		"occupation": nil, "email": nil, "is_email_public": false,
		"created_at": time.Now().Add(-24 * time.Hour).UTC(),
	})
}
