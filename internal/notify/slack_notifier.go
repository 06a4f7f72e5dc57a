package notify

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/sizzlei/slack-notificator"
	"github.com/slack-go/slack"

	"portfolio/internal/remote"
)

// attachmentColor는 방명록 알림 첨부의 색상입니다.
const attachmentColor = "#2eb886"

// SlackNotifier는 새 방명록을 Slack 채널로 알립니다.
// token이나 channel이 비어 있으면 아무것도 보내지 않습니다.
type SlackNotifier struct {
	token   string
	channel string

	// (테스트에서 교체)
	send func(token, channel, text string, attachment slack.Attachment) error
}

// NewSlackNotifier는 새 SlackNotifier를 생성합니다.
func NewSlackNotifier(token, channel string) *SlackNotifier {
	return &SlackNotifier{
		token:   token,
		channel: channel,
		send:    sendAttachment,
	}
}

func sendAttachment(token, channel, text string, attachment slack.Attachment) error {
	api := slacknotificator.GetClient(token)
	return api.SetChannel(channel).SendAttachment(text, attachment)
}

// Enabled는 알림 발송 가능 여부입니다.
func (n *SlackNotifier) Enabled() bool {
	return n.token != "" && n.channel != ""
}

// NotifyGuestbookEntry는 guestbook.Notifier 구현입니다.
func (n *SlackNotifier) NotifyGuestbookEntry(ctx context.Context, row remote.Row) error {
	if !n.Enabled() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	text, attachment := BuildEntryAttachment(row)
	if err := n.send(n.token, n.channel, text, attachment); err != nil {
		return fmt.Errorf("slack 채널(%s) 발송 실패: %w", n.channel, err)
	}
	log.Infof("방명록 알림 발송 성공 (채널: %s)", n.channel)
	return nil
}

// BuildEntryAttachment는 알림 문구와 첨부를 만듭니다.
// 이메일은 작성자가 공개를 선택한 경우에만 포함합니다.
func BuildEntryAttachment(row remote.Row) (string, slack.Attachment) {
	author := stringField(row, "author_name")
	text := fmt.Sprintf(":memo: 새 방명록이 등록되었습니다. (%s)", author)

	fields := []slack.AttachmentField{
		{Title: "작성자", Value: author, Short: true},
	}
	if occupation := stringField(row, "occupation"); occupation != "" {
		fields = append(fields, slack.AttachmentField{Title: "소속/직업", Value: occupation, Short: true})
	}
	if public, _ := row["is_email_public"].(bool); public {
		if email := stringField(row, "email"); email != "" {
			fields = append(fields, slack.AttachmentField{Title: "이메일", Value: email, Short: true})
		}
	}

	return text, slack.Attachment{
		Color:    attachmentColor,
		Fallback: text,
		Text:     stringField(row, "message"),
		Fields:   fields,
	}
}

func stringField(row remote.Row, key string) string {
	s, _ := row[key].(string)
	return s
}
