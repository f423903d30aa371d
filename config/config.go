package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port         string `envconfig:"PORT" default:"5000"`
	MongoURI     string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB      string `envconfig:"MONGO_DB" default:"faithshop"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:5174,http://localhost:3000"`
	BaseURL      string `envconfig:"BASE_URL" default:"http://localhost:5000"`
	StaticDir    string `envconfig:"STATIC_DIR" default:"./static"`
	AppEnv       string `envconfig:"APP_ENV" default:"development"`
}

// Load reads .env when present, then populates Config from the environment.
// A missing .env is not an error; deployments set real env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
