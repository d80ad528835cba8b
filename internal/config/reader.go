package config

import "github.com/ilyakaznacheev/cleanenv"

// Reader produces a populated Config. The interface exists so tests and
// future file-backed sources can stand in for the environment.
type Reader interface {
	Read() (*Config, error)
}

// EnvReader fills the Config from process environment variables via the
// struct's env tags, applying env-default values and rejecting a missing
// ENV, MONGO_URI or JWT_SECRET.
type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
