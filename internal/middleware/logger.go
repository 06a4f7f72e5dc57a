package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// RequestLogger는 요청 1건마다 메서드, 경로, 상태 코드, 처리 시간을 남깁니다.
// /public 정적 파일 요청은 Debug 레벨로만 기록합니다.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		entry := log.WithFields(log.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": time.Since(start).String(),
			"ip":      c.IP(),
		})
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("요청 처리 실패")
		case strings.HasPrefix(c.Path(), "/public"):
			entry.Debug("정적 파일")
		default:
			entry.Info("요청 처리")
		}
		return err
	}
}
