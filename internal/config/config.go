package config

import "time"

// 원격 저장소 드라이버
const (
	DriverMySQL     = "mysql"
	DriverPostgREST = "postgrest"
	DriverMemory    = "memory"
)

// Config는 애플리케이션 전체 설정입니다.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Remote     RemoteConfig     `yaml:"remote"`
	Repository RepositoryConfig `yaml:"repository"`
	PostgREST  PostgRESTConfig  `yaml:"postgrest"`
	Slack      SlackConfig      `yaml:"slack"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Session    SessionConfig    `yaml:"session"`
	Log        LogConfig        `yaml:"log"`
	Profile    ProfileConfig    `yaml:"profile"`
}

// ServerConfig는 HTTP 서버 설정입니다.
type ServerConfig struct {
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// RemoteConfig는 원격 컬렉션(방명록, 프로젝트) 설정입니다.
type RemoteConfig struct {
	Driver              string `yaml:"driver"               env:"REMOTE_DRIVER"               env-default:"memory"`
	GuestbookCollection string `yaml:"guestbook_collection" env:"REMOTE_GUESTBOOK_COLLECTION" env-default:"portfolio_guestbook"`
	ProjectCollection   string `yaml:"project_collection"   env:"REMOTE_PROJECT_COLLECTION"   env-default:"portfolio_projects"`
	FeaturedLimit       int    `yaml:"featured_limit"       env:"REMOTE_FEATURED_LIMIT"       env-default:"4"`
	SeedDemo            bool   `yaml:"seed_demo"            env:"REMOTE_SEED_DEMO"            env-default:"false"` // memory 드라이버 전용
}

// RepositoryConfig는 MySQL 접속 정보입니다. (driver: mysql)
type RepositoryConfig struct {
	User     string `yaml:"user"     env:"REPOSITORY_USER"`
	Password string `yaml:"password" env:"REPOSITORY_PASSWORD"`
	Endpoint string `yaml:"endpoint" env:"REPOSITORY_ENDPOINT"`
	Port     int    `yaml:"port"     env:"REPOSITORY_PORT" env-default:"3306"`
	Database string `yaml:"database" env:"REPOSITORY_DATABASE"`
}

// PostgRESTConfig는 Supabase(PostgREST) 접속 정보입니다. (driver: postgrest)
type PostgRESTConfig struct {
	URL     string        `yaml:"url"     env:"POSTGREST_URL"`
	APIKey  string        `yaml:"api_key" env:"POSTGREST_API_KEY"`
	Timeout time.Duration `yaml:"timeout" env:"POSTGREST_TIMEOUT" env-default:"0s"` // 0이면 제한 없음
}

// SlackConfig는 새 방명록 알림 설정입니다. 둘 중 하나라도 비면 알림을 끕니다.
type SlackConfig struct {
	Token   string `yaml:"token"   env:"SLACK_TOKEN"`
	Channel string `yaml:"channel" env:"SLACK_CHANNEL"`
}

// SchedulerConfig는 keep-alive 작업 설정입니다. "off"이면 작업을 등록하지 않습니다.
type SchedulerConfig struct {
	KeepAliveSpec string `yaml:"keepalive_spec" env:"SCHEDULER_KEEPALIVE_SPEC" env-default:"@every 6h"`
}

// SessionConfig는 세션(플래시 메시지) 설정입니다.
type SessionConfig struct {
	CookieName   string        `yaml:"cookie_name"   env:"SESSION_COOKIE_NAME"   env-default:"portfolio_session"`
	CookieSecure bool          `yaml:"cookie_secure" env:"SESSION_COOKIE_SECURE" env-default:"false"`
	Expiration   time.Duration `yaml:"expiration"    env:"SESSION_EXPIRATION"    env-default:"30m"`
	Table        string        `yaml:"table"         env:"SESSION_TABLE"         env-default:"fiber_sessions"`
}

// LogConfig는 로깅 설정입니다.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text | json
}

// ProfileConfig는 사이트 주인 정보입니다. 빈 값은 기본 콘텐츠를 씁니다.
type ProfileConfig struct {
	Name      string `yaml:"name"      env:"PROFILE_NAME"`
	Headline  string `yaml:"headline"  env:"PROFILE_HEADLINE"`
	Email     string `yaml:"email"     env:"PROFILE_EMAIL"`
	Phone     string `yaml:"phone"     env:"PROFILE_PHONE"`
	Location  string `yaml:"location"  env:"PROFILE_LOCATION"`
	GitHub    string `yaml:"github"    env:"PROFILE_GITHUB"`
	LinkedIn  string `yaml:"linkedin"  env:"PROFILE_LINKEDIN"`
	Instagram string `yaml:"instagram" env:"PROFILE_INSTAGRAM"`
}
