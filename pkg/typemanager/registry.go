package typemanager

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/plblum/jTAC-sub002/pkg/culture"
	"github.com/plblum/jTAC-sub002/pkg/logger"
)

// Constructor creates a configured type manager.
type Constructor func(provider culture.Provider, opts Options) (TypeManager, error)

// Ctor adapts a typed constructor such as NewInteger to a Constructor.
func Ctor[T TypeManager](fn func(culture.Provider, Options) (T, error)) Constructor {
	return func(provider culture.Provider, opts Options) (TypeManager, error) {
		tm, err := fn(provider, opts)
		if err != nil {
			return nil, err
		}
		return tm, nil
	}
}

var (
	_ TypeManager = (*Integer)(nil)
	_ TypeManager = (*Float)(nil)
	_ TypeManager = (*Currency)(nil)
	_ TypeManager = (*Percent)(nil)
	_ TypeManager = (*Date)(nil)
	_ TypeManager = (*MonthYear)(nil)
	_ TypeManager = (*DayMonth)(nil)
	_ TypeManager = (*TimeOfDay)(nil)
	_ TypeManager = (*Duration)(nil)
	_ TypeManager = (*DateTime)(nil)
	_ TypeManager = (*String)(nil)
	_ TypeManager = (*Pattern)(nil)
	_ TypeManager = (*RegionString)(nil)
	_ TypeManager = (*CreditCardNumber)(nil)
	_ TypeManager = (*Boolean)(nil)
)

// alias is a named, preconfigured variant of a registered class.
type alias struct {
	class string
	opts  Options
}

// Registry resolves class names and aliases to type managers.
type Registry struct {
	provider culture.Provider
	logger   *slog.Logger

	mu      sync.RWMutex
	ctors   map[string]Constructor
	aliases map[string]alias
}

// NewRegistry creates a registry holding the built-in classes and aliases.
// A nil provider selects the built-in cultures.
func NewRegistry(provider culture.Provider, opts ...RegistryOption) *Registry {
	options := &registryOptions{logger: logger.Discard()}
	for _, opt := range opts {
		opt(options)
	}
	if provider == nil {
		provider = DefaultProvider()
	}

	r := &Registry{
		provider: provider,
		logger:   options.logger,
		ctors:    make(map[string]Constructor),
		aliases:  make(map[string]alias),
	}
	maps.Copy(r.ctors, builtinClasses)
	for _, a := range builtinAliases {
		if err := r.RegisterAlias(a.name, a.class, a.opts); err != nil {
			panic(err)
		}
	}
	return r
}

var builtinClasses = map[string]Constructor{
	"Integer":          Ctor(NewInteger),
	"Float":            Ctor(NewFloat),
	"Currency":         Ctor(NewCurrency),
	"Percent":          Ctor(NewPercent),
	"Date":             Ctor(NewDate),
	"MonthYear":        Ctor(NewMonthYear),
	"DayMonth":         Ctor(NewDayMonth),
	"TimeOfDay":        Ctor(NewTimeOfDay),
	"Duration":         Ctor(NewDuration),
	"DateTime":         Ctor(NewDateTime),
	"String":           Ctor(NewString),
	"Pattern":          Ctor(NewPattern),
	"EmailAddress":     Ctor(NewEmailAddress),
	"URL":              Ctor(NewURL),
	"PhoneNumber":      Ctor(NewPhoneNumber),
	"PostalCode":       Ctor(NewPostalCode),
	"CreditCardNumber": Ctor(NewCreditCardNumber),
	"Boolean":          Ctor(NewBoolean),
}

var builtinAliases = []struct {
	name, class string
	opts        Options
}{
	{"Integer.Positive", "Integer", Options{"allowNegatives": false}},
	{"Float.Positive", "Float", Options{"allowNegatives": false}},
	{"Currency.Positive", "Currency", Options{"allowNegatives": false}},
	{"Currency.NoSymbol", "Currency", Options{"showCurrencySymbol": false}},
	{"Percent.Positive", "Percent", Options{"allowNegatives": false}},
	{"Date.Short", "Date", Options{"dateFormat": DateShort}},
	{"Date.Abbrev", "Date", Options{"dateFormat": DateAbbreviated}},
	{"Date.Long", "Date", Options{"dateFormat": DateLong}},
	{"Date.Neutral", "Date", Options{"dateFormat": DateNeutral}},
	{"MonthYear.Long", "MonthYear", Options{"dateFormat": DateLong}},
	{"DayMonth.Long", "DayMonth", Options{"dateFormat": DateLong}},
	{"TimeOfDay.HM", "TimeOfDay", Options{"timeFormat": TimeShort}},
	{"TimeOfDay.HMS", "TimeOfDay", Options{"timeFormat": TimeLong}},
	{"Duration.HM", "Duration", Options{"timeFormat": TimeShort}},
	{"Duration.Hours", "Duration", Options{"valueAsNumber": true, "timeOneEqualsSeconds": 3600}},
	{"DateTime.Long", "DateTime", Options{"dateFormat": DateLong}},
	{"DateTime.TimeRequired", "DateTime", Options{"timeRequired": true}},
	{"PhoneNumber.US", "PhoneNumber", Options{"regionName": "US"}},
	{"PostalCode.US", "PostalCode", Options{"regionName": "US"}},
}

// Provider returns the culture provider given to every created manager.
func (r *Registry) Provider() culture.Provider { return r.provider }

// Register adds a class. Names are case-sensitive.
func (r *Registry) Register(name string, ctor Constructor) error {
	if name == "" || ctor == nil {
		return fmt.Errorf("register %q: name and constructor are required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(name) {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateType)
	}
	r.ctors[name] = ctor
	r.logger.Debug("type manager registered", logger.TypeName(name))
	return nil
}

// RegisterAlias adds a preconfigured variant of class, which may itself be
// an alias. The options are checked by creating a manager, so a bad alias
// fails here rather than on first use.
func (r *Registry) RegisterAlias(name, class string, opts Options) error {
	if name == "" {
		return errors.New("register alias: name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(name) {
		return fmt.Errorf("register alias %q: %w", name, ErrDuplicateType)
	}
	ctor, merged, err := r.resolve(class, opts)
	if err != nil {
		return fmt.Errorf("register alias %q: %w", name, err)
	}
	if _, err := ctor(r.provider, merged); err != nil {
		return fmt.Errorf("register alias %q: %w", name, err)
	}
	r.aliases[name] = alias{class: class, opts: maps.Clone(opts)}
	r.logger.Debug("type manager alias registered",
		logger.Alias(name),
		logger.TypeName(class),
	)
	return nil
}

func (r *Registry) taken(name string) bool {
	_, isClass := r.ctors[name]
	_, isAlias := r.aliases[name]
	return isClass || isAlias
}

// resolve follows aliases down to a class. Options of outer names override
// those of the aliases they build on.
func (r *Registry) resolve(name string, opts Options) (Constructor, Options, error) {
	merged := Options{}
	layers := []Options{opts}
	for {
		if ctor, ok := r.ctors[name]; ok {
			for i := len(layers) - 1; i >= 0; i-- {
				maps.Copy(merged, layers[i])
			}
			return ctor, merged, nil
		}
		a, ok := r.aliases[name]
		if !ok {
			return nil, nil, fmt.Errorf("%q: %w", name, ErrUnknownType)
		}
		layers = append(layers, a.opts)
		name = a.class
	}
}

// Create returns a new manager for a class name or alias. opts override the
// alias options.
func (r *Registry) Create(name string, opts Options) (TypeManager, error) {
	r.mu.RLock()
	ctor, merged, err := r.resolve(name, opts)
	r.mu.RUnlock()
	if err != nil {
		r.logger.Warn("type manager not found", logger.TypeName(name))
		return nil, err
	}
	return ctor(r.provider, merged)
}

// Names returns every class and alias name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ctors)+len(r.aliases))
	for name := range r.ctors {
		names = append(names, name)
	}
	for name := range r.aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsAlias reports whether name is a registered alias.
func (r *Registry) IsAlias(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.aliases[name]
	return ok
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for registration and lookup events.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(o *registryOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
