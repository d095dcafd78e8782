// Package cli provides the command line interface of jtac.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plblum/jTAC-sub002/pkg/config"
	"github.com/plblum/jTAC-sub002/pkg/culture"
	"github.com/plblum/jTAC-sub002/pkg/logger"
	"github.com/plblum/jTAC-sub002/pkg/typemanager"
)

// Settings is read from the environment and may be overridden by flags.
type Settings struct {
	Culture    string `env:"JTAC_CULTURE" envDefault:"en-US"`
	CultureDir string `env:"JTAC_CULTURE_DIR"`
	LogLevel   string `env:"JTAC_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"JTAC_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

// ErrInvalidOption is returned for an --option flag without name=value.
var ErrInvalidOption = errors.New("option must be written as name=value")

// flagValues holds the raw persistent flags.
type flagValues struct {
	culture    string
	cultureDir string
	logLevel   string
	logFormat  string
	options    []string
}

// App represents the jtac CLI application
type App struct {
	Settings Settings
	Logger   *slog.Logger
	Store    *culture.Store
	Registry *typemanager.Registry

	out   io.Writer
	err   io.Writer
	flags flagValues
}

// NewApp creates a new jtac CLI application writing results to out and
// logs to errOut.
func NewApp(out, errOut io.Writer) *App {
	return &App{out: out, err: errOut}
}

// setup loads settings, then builds the logger, the culture store and the
// type manager registry.
func (app *App) setup(cmd *cobra.Command) error {
	if err := config.Load(&app.Settings); err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	app.applyFlags(cmd)

	level, err := logger.ParseLevel(app.Settings.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(app.Settings.LogFormat)
	if err != nil {
		return err
	}
	app.Logger = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(app.err),
		logger.WithAttr(logger.Component("jtac")),
		logger.WithContextExtractors(culture.ContextAttr),
	)

	ctx := culture.WithCulture(cmd.Context(), app.Settings.Culture)
	cmd.SetContext(ctx)

	app.Store = culture.NewStore(culture.WithLogger(app.Logger))
	if dir := app.Settings.CultureDir; dir != "" {
		if err := app.Store.Load(ctx, culture.NewDirectoryAdapter(culture.NewYAMLParser(), dir)); err != nil {
			return fmt.Errorf("loading cultures from %s: %w", dir, err)
		}
	}
	app.Registry = typemanager.NewRegistry(app.Store, typemanager.WithLogger(app.Logger))
	return nil
}

func (app *App) applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("culture") {
		app.Settings.Culture = app.flags.culture
	}
	if flags.Changed("culture-dir") {
		app.Settings.CultureDir = app.flags.cultureDir
	}
	if flags.Changed("log-level") {
		app.Settings.LogLevel = app.flags.logLevel
	}
	if flags.Changed("log-format") {
		app.Settings.LogFormat = app.flags.logFormat
	}
}

// typeManager creates the named type manager bound to the selected
// culture. --option values are applied on top.
func (app *App) typeManager(name string) (typemanager.TypeManager, error) {
	opts := typemanager.Options{}
	if app.Settings.Culture != "" {
		opts["cultureName"] = app.Settings.Culture
	}
	for _, kv := range app.flags.options {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%q: %w", kv, ErrInvalidOption)
		}
		opts[key] = value
	}
	return app.Registry.Create(name, opts)
}
