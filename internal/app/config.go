package app

import (
	_ "github.com/joho/godotenv/autoload"

	"taskboard/internal/config"
)

// MustReadEnv loads the Env/HTTP/Mongo/JWT sections from the process
// environment (a .env file is folded in by the godotenv autoload import)
// and publishes the result through config.SetGlobal. Secrets stay out of
// the startup log.
func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("mongo_database", cfg.Mongo.Database).
		Msg("read env")

	config.SetGlobal(cfg)
}
