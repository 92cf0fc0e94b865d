// Package config carga la configuración del servicio desde el entorno.
// Un .env en el working directory se carga primero si existe (dev).
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Port int    `env:"PORT,default=8080"`
	Env  string `env:"APP_ENV,default=dev"`

	// DSN de Postgres. Vacío => storage in-memory (modo dev).
	DatabaseDSN string `env:"DB_DSN"`

	// Credenciales del usuario admin de arranque. Si ambas están
	// presentes se garantiza un usuario habilitado con los tres roles.
	AdminUser     string `env:"ADMIN_USER"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
	AppName   string `env:"APP_NAME,default=petclinic"`
}

func Load() (Config, error) {
	// .env es opcional; en producción las vars vienen del entorno.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config from env: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
