package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sizzlei/confloader"
)

// DefaultRegion은 Parameter Store 리전입니다.
const DefaultRegion = "ap-northeast-2"

// LoadParamStore는 AWS Parameter Store(key)에 저장된 설정을 읽습니다.
// ENV + 기본값을 먼저 채운 뒤, 파라미터에 있는 섹션 값으로 덮어씁니다.
func LoadParamStore(region, key string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	loaded, err := confloader.AWSParamLoader(region, key)
	if err != nil {
		return nil, fmt.Errorf("config: parameter store %s: %w", key, err)
	}

	cfg.apply(sections{
		"server":     loaded.Keyload("server"),
		"remote":     loaded.Keyload("remote"),
		"repository": loaded.Keyload("repository"),
		"postgrest":  loaded.Keyload("postgrest"),
		"slack":      loaded.Keyload("slack"),
		"scheduler":  loaded.Keyload("scheduler"),
		"session":    loaded.Keyload("session"),
		"log":        loaded.Keyload("log"),
		"profile":    loaded.Keyload("profile"),
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

type sections map[string]map[string]interface{}

// apply는 섹션 값을 덮어씁니다. 키는 Parameter Store 관례대로 대문자로 시작합니다. (예: "Endpoint")
func (c *Config) apply(s sections) {
	setInt(&c.Server.Port, s["server"], "Port")
	setDuration(&c.Server.ShutdownTimeout, s["server"], "ShutdownTimeout")

	setString(&c.Remote.Driver, s["remote"], "Driver")
	setString(&c.Remote.GuestbookCollection, s["remote"], "GuestbookCollection")
	setString(&c.Remote.ProjectCollection, s["remote"], "ProjectCollection")
	setInt(&c.Remote.FeaturedLimit, s["remote"], "FeaturedLimit")
	setBool(&c.Remote.SeedDemo, s["remote"], "SeedDemo")

	setString(&c.Repository.User, s["repository"], "User")
	setString(&c.Repository.Password, s["repository"], "Password")
	setString(&c.Repository.Endpoint, s["repository"], "Endpoint")
	setInt(&c.Repository.Port, s["repository"], "Port")
	setString(&c.Repository.Database, s["repository"], "Database")

	setString(&c.PostgREST.URL, s["postgrest"], "URL")
	setString(&c.PostgREST.APIKey, s["postgrest"], "APIKey")
	setDuration(&c.PostgREST.Timeout, s["postgrest"], "Timeout")

	setString(&c.Slack.Token, s["slack"], "Token")
	setString(&c.Slack.Channel, s["slack"], "Channel")

	setString(&c.Scheduler.KeepAliveSpec, s["scheduler"], "KeepAliveSpec")

	setString(&c.Session.CookieName, s["session"], "CookieName")
	setBool(&c.Session.CookieSecure, s["session"], "CookieSecure")
	setDuration(&c.Session.Expiration, s["session"], "Expiration")
	setString(&c.Session.Table, s["session"], "Table")

	setString(&c.Log.Level, s["log"], "Level")
	setString(&c.Log.Format, s["log"], "Format")

	setString(&c.Profile.Name, s["profile"], "Name")
	setString(&c.Profile.Headline, s["profile"], "Headline")
	setString(&c.Profile.Email, s["profile"], "Email")
	setString(&c.Profile.Phone, s["profile"], "Phone")
	setString(&c.Profile.Location, s["profile"], "Location")
	setString(&c.Profile.GitHub, s["profile"], "GitHub")
	setString(&c.Profile.LinkedIn, s["profile"], "LinkedIn")
	setString(&c.Profile.Instagram, s["profile"], "Instagram")
}

// (Parameter Store 값은 JSON/YAML 디코딩 결과라 숫자가 int 또는 float64로 올 수 있음)

func setString(dst *string, m map[string]interface{}, key string) {
	if v, ok := m[key]; ok && v != nil {
		*dst = fmt.Sprint(v)
	}
}

func setInt(dst *int, m map[string]interface{}, key string) {
	switch v := m[key].(type) {
	case int:
		*dst = v
	case int64:
		*dst = int(v)
	case float64:
		*dst = int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, m map[string]interface{}, key string) {
	switch v := m[key].(type) {
	case bool:
		*dst = v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, m map[string]interface{}, key string) {
	switch v := m[key].(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	case int:
		*dst = time.Duration(v) * time.Second
	case float64:
		*dst = time.Duration(v * float64(time.Second))
	}
}
