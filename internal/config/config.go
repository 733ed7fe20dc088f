package config

import "github.com/spf13/viper"

// Config holds everything read from the environment at startup. It is
// built once in main and passed into the components that need it rather
// than reached for globally.
type Config struct {
	Port            string
	DatabaseDriver  string // "sqlite" or "postgres"
	DatabaseDSN     string
	StaticImagesDir string
	FrontendDist    string
	CORSOrigins     string
	RabbitMQURL     string // empty disables event publishing
	SeedOnStart     bool
}

// Load reads configuration from environment variables with sensible
// defaults for local development.
func Load() Config {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "database.sqlite3")
	v.SetDefault("STATIC_IMAGES_DIR", "./static/images")
	v.SetDefault("FRONTEND_DIST", "./dist")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173, http://localhost:3000")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SEED_ON_START", true)
	v.AutomaticEnv()

	return Config{
		Port:            v.GetString("APP_PORT"),
		DatabaseDriver:  v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		StaticImagesDir: v.GetString("STATIC_IMAGES_DIR"),
		FrontendDist:    v.GetString("FRONTEND_DIST"),
		CORSOrigins:     v.GetString("CORS_ORIGINS"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		SeedOnStart:     v.GetBool("SEED_ON_START"),
	}
}
