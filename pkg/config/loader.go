package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// configCache stores one parsed value per configuration type.
type configCache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
	}

	defaultEnvLoaded sync.Once

	structValidator = sync.OnceValue(func() *validator.Validate {
		return validator.New(validator.WithRequiredStructEnabled())
	})
)

// LoadEnv reads the given .env files into the process environment, or
// the .env file of the working directory when no file is given. Values
// already present in the environment win over files; among the files,
// later ones override earlier ones.
func LoadEnv(files ...string) error {
	// Explicit files replace the implicit .env lookup of Load.
	defaultEnvLoaded.Do(func() {})
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	values := make(map[string]string)
	for _, file := range files {
		m, err := godotenv.Read(file)
		if err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		for k, v := range m {
			values[k] = v
		}
	}
	return setMissing(values)
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using its env tags, then
// checks its validate tags. Each configuration type is parsed once; later
// calls get the cached copy. A failed load is not cached.
//
// Example:
//
//	type Settings struct {
//		Culture   string `env:"JTAC_CULTURE" envDefault:"en-US"`
//		LogFormat string `env:"JTAC_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	cfg, err := parse[T]()
	if err != nil {
		return err
	}
	globalCache.values[typeName] = cfg
	*v = cfg
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached value of T and loads it again from
// the current environment.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	globalCache.mu.Lock()
	delete(globalCache.values, getTypeName[T]())
	globalCache.mu.Unlock()
	return Load(v)
}

// ResetCache forgets every loaded configuration.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

func parse[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	if err := structValidator().Struct(cfg); err != nil {
		return cfg, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

func setMissing(values map[string]string) error {
	for k, v := range values {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return nil
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.PkgPath() + "." + t.String()
}
