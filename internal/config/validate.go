package config

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Validate는 읽어온 설정의 업무 규칙을 검사합니다. Load가 자동으로 호출합니다.
func (c *Config) Validate() error {
	c.Remote.Driver = strings.ToLower(strings.TrimSpace(c.Remote.Driver))

	switch c.Remote.Driver {
	case DriverMySQL:
		if c.Repository.Endpoint == "" || c.Repository.Database == "" {
			return fmt.Errorf("repository: endpoint and database are required for driver %q", c.Remote.Driver)
		}
	case DriverPostgREST:
		if c.PostgREST.URL == "" || c.PostgREST.APIKey == "" {
			return fmt.Errorf("postgrest: url and api_key are required for driver %q", c.Remote.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("remote.driver must be one of mysql, postgrest, memory (got %q)", c.Remote.Driver)
	}

	if c.Remote.FeaturedLimit < 0 {
		return fmt.Errorf("remote.featured_limit must be >= 0 (got %d)", c.Remote.FeaturedLimit)
	}
	if c.PostgREST.Timeout < 0 {
		return fmt.Errorf("postgrest.timeout must be >= 0 (got %v)", c.PostgREST.Timeout)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	return nil
}

// SlackEnabled는 알림에 필요한 값이 모두 있는지 여부입니다.
func (c *Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.Channel != ""
}
