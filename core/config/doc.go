// Package config loads typed configuration from environment variables.
//
// A .env file in the working directory is read once, on first use, through
// joho/godotenv; variables already present in the environment win. Struct
// fields are populated with caarlos0/env tags:
//
//	type Config struct {
//		BaseURL string        `env:"MINIKIT_BASE_URL,required"`
//		AppName string        `env:"MINIKIT_APP_NAME" envDefault:"minikit"`
//		Timeout time.Duration `env:"MINIKIT_REQUEST_TIMEOUT" envDefault:"15s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each configuration type is parsed once per process and cached; later Load
// calls for the same type copy the cached value. MustLoad panics on failure
// and is meant for program start-up.
package config
