package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	log "github.com/sirupsen/logrus"
)

// FlashSuccess는 세션/Locals 공용 플래시 키입니다. (실패는 리다이렉트 없이 바로 다시 렌더링)
const FlashSuccess = "flash_success"

// Flash는 세션에 남은 플래시 메시지를 꺼내 c.Locals에 옮기고 세션에서 지웁니다.
// (리다이렉트 다음 요청에서 한 번만 보이도록)
func Flash(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. 세션 조회 (실패해도 요청은 계속 처리)
		sess, err := store.Get(c)
		if err != nil {
			log.Warnf("플래시: 세션 조회 실패 (%s): %v", c.Path(), err)
			return c.Next()
		}

		// 2. 메시지 이동 (지운 경우에만 저장)
		if v := sess.Get(FlashSuccess); v != nil {
			c.Locals(FlashSuccess, v)
			sess.Delete(FlashSuccess)
			if err := sess.Save(); err != nil {
				log.Warnf("플래시: 세션 저장 실패: %v", err)
			}
		}
		return c.Next()
	}
}

// SetFlash는 다음 요청에서 보여줄 플래시 메시지를 세션에 저장합니다.
func SetFlash(c *fiber.Ctx, store *session.Store, key, message string) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// FlashMessage는 Flash 미들웨어가 옮겨둔 메시지를 문자열로 꺼냅니다.
func FlashMessage(c *fiber.Ctx, key string) string {
	if v, ok := c.Locals(key).(string); ok {
		return v
	}
	return ""
}
