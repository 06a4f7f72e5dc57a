package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath는 -file 플래그 기본값입니다.
const DefaultPath = "./config.yaml"

// Load는 YAML 파일과 환경 변수로 설정을 읽습니다.
// 우선순위: ENV > YAML > 기본값(env-default 태그)
// 기본 경로에 파일이 없으면 ENV + 기본값만 사용하고, 다른 경로를 지정했는데 없으면 에러입니다.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if path != DefaultPath || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
