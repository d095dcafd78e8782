// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`,
// and checks `validate` tags with `github.com/go-playground/validator/v10`
// once a struct is parsed.
//
// # Usage
//
//	type Settings struct {
//	    Culture    string `env:"JTAC_CULTURE" envDefault:"en-US"`
//	    CultureDir string `env:"JTAC_CULTURE_DIR"`
//	    LogLevel   string `env:"JTAC_LOG_LEVEL" envDefault:"info"`
//	    LogFormat  string `env:"JTAC_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Load reads the .env file of the working directory the first time it runs
// unless LoadEnv was called before. Each configuration type is parsed once
// per process and then served from a cache; failed loads are retried on the
// next call.
//
// # Errors
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrInvalidConfig: a validate tag rejected the parsed value.
//   - ErrLoadingEnvFile: a .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load.
//
// # Testing
//
// ResetCache clears every cached type. ForceReloadConfig reloads one type
// after the environment changed.
package config
