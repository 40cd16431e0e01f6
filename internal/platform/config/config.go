package config

import (
	"os"
	"strings"

	"animal-zoo/internal/platform/logger"
)

// Config reúne lo que el servicio lee del entorno:
// - PORT (default 8080)
// - DB_DSN: si viene, Postgres; si no, in-memory
// - LOG_LEVEL, LOG_FORMAT, APP_NAME (ver logger.NewFromEnv)
// - SEED_ROSTER: "default" o path a un roster YAML a admitir al arrancar,
//   solo si el registro está vacío (con Postgres no se duplica al reiniciar)
type Config struct {
	Addr  string
	DBDSN string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	SeedRoster string
}

func FromEnv() Config {
	return FromLookup(os.Getenv)
}

// FromLookup permite inyectar el origen de variables (tests).
func FromLookup(getenv func(string) string) Config {
	addr := ":8080"
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		addr = ":" + v
	}

	app := strings.TrimSpace(getenv("APP_NAME"))
	if app == "" {
		app = "animal-zoo"
	}

	return Config{
		Addr:       addr,
		DBDSN:      strings.TrimSpace(getenv("DB_DSN")),
		LogLevel:   logger.ParseLevel(getenv("LOG_LEVEL")),
		LogFormat:  logger.ParseFormat(getenv("LOG_FORMAT")),
		AppName:    app,
		SeedRoster: strings.TrimSpace(getenv("SEED_ROSTER")),
	}
}

func (c Config) Logger() logger.Logger {
	return logger.New(logger.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		App:    c.AppName,
	})
}
