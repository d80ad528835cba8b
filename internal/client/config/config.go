package config

import (
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	ServerURL   string `env:"TASKBOARD_SERVER_URL" env-default:"http://localhost:5001"`
	SessionFile string `env:"TASKBOARD_SESSION_FILE"`
}

func Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.SessionFile = filepath.Join(home, ".taskboard", "session.json")
	}
	return cfg, nil
}
