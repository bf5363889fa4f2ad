package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// Env holds the runtime configuration, populated from BUSLINE_* environment
// variables with sensible defaults for local development.
type Env struct {
	AppAddr       string `envconfig:"APP_ADDR" default:":8080"`
	GinMode       string `envconfig:"GIN_MODE" default:"debug"`
	JWTSecret     string `envconfig:"JWT_SECRET" default:"super-secret-key-change-me"`
	DataDir       string `envconfig:"DATA_DIR"`
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	SeedDemo      bool   `envconfig:"SEED_DEMO" default:"true"`
	MailFrom      string `envconfig:"MAIL_FROM" default:"no-reply@busline.local"`
}

func LoadEnv() Env {
	var env Env
	if err := envconfig.Process("busline", &env); err != nil {
		log.Fatalf("failed to load environment config: %v", err)
	}
	return env
}
