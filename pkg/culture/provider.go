package culture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/plblum/jTAC-sub002/pkg/logger"
)

// Provider is the read interface consumed by the typemanager package.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Culture returns the record for name. An empty name selects the
	// default culture. Returned records must not be modified, and the
	// same record should be returned until the culture is replaced.
	Culture(name string) (*Info, error)
	// DefaultName returns the name used when no culture is requested.
	DefaultName() string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for loading diagnostics.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaultCulture sets the culture returned for an empty name.
func WithDefaultCulture(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.defaultName = name
		}
	}
}

// WithoutBuiltins starts the store with the invariant culture only.
func WithoutBuiltins() Option {
	return func(s *Store) {
		s.skipBuiltins = true
	}
}

// Store is a thread-safe Provider backed by an in-memory set of records.
type Store struct {
	mu           sync.RWMutex
	cultures     map[string]*Info
	defaultName  string
	skipBuiltins bool
	logger       *slog.Logger

	// matcher is rebuilt lazily after the set of records changes.
	matcher language.Matcher
	tags    []string
}

// NewStore creates a store seeded with the built-in cultures.
func NewStore(opts ...Option) *Store {
	s := &Store{
		cultures:    make(map[string]*Info),
		defaultName: "en-US",
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, info := range builtinCultures() {
		if s.skipBuiltins && info.Name != Invariant {
			continue
		}
		s.cultures[key(info.Name)] = info
	}
	if _, ok := s.cultures[key(s.defaultName)]; !ok {
		s.logger.Warn("default culture is not registered, using invariant", logger.Culture(s.defaultName))
		s.defaultName = Invariant
	}
	return s
}

var (
	invariantOnce  sync.Once
	invariantStore *Store
)

// InvariantProvider returns a shared provider whose default culture is the
// invariant culture. It is used for neutral conversions.
func InvariantProvider() Provider {
	invariantOnce.Do(func() {
		invariantStore = NewStore(WithoutBuiltins(), WithDefaultCulture(Invariant))
	})
	return invariantStore
}

func key(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
}

// DefaultName implements Provider.
func (s *Store) DefaultName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultName
}

// Culture implements Provider. Names are matched case-insensitively; when no
// record exists for the exact name the closest record of the same language
// is returned (fr-CA resolves to fr-FR).
func (s *Store) Culture(name string) (*Info, error) {
	if strings.TrimSpace(name) == "" {
		name = s.DefaultName()
	}
	k := key(name)

	s.mu.RLock()
	info, ok := s.cultures[k]
	s.mu.RUnlock()
	if ok {
		return info, nil
	}

	tag, err := language.Parse(k)
	if err != nil {
		return nil, errors.Join(ErrCultureNotFound, fmt.Errorf("culture %q: %w", name, err))
	}

	matcher, names := s.languageMatcher()
	if len(names) == 0 {
		return nil, errors.Join(ErrCultureNotFound, fmt.Errorf("culture %q", name))
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(names) {
		return nil, errors.Join(ErrCultureNotFound, fmt.Errorf("culture %q", name))
	}

	s.mu.RLock()
	info, ok = s.cultures[names[idx]]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.Join(ErrCultureNotFound, fmt.Errorf("culture %q", name))
	}
	return info, nil
}

// languageMatcher returns the matcher over every record with a BCP 47 name
// and the record keys in matcher order.
func (s *Store) languageMatcher() (language.Matcher, []string) {
	s.mu.RLock()
	if s.matcher != nil {
		defer s.mu.RUnlock()
		return s.matcher, s.tags
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.matcher != nil {
		return s.matcher, s.tags
	}

	keys := make([]string, 0, len(s.cultures))
	for k := range s.cultures {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// The default culture goes first so it wins ties inside one language.
	def := key(s.defaultName)
	if i := slices.Index(keys, def); i > 0 {
		keys = append([]string{def}, slices.Delete(keys, i, i+1)...)
	}

	supported := make([]language.Tag, 0, len(keys))
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		tag, err := language.Parse(k)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		names = append(names, k)
	}
	s.matcher = language.NewMatcher(supported)
	s.tags = names
	return s.matcher, s.tags
}

// Names returns the names of all registered cultures, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.cultures))
	for _, info := range s.cultures {
		names = append(names, info.Name)
	}
	sort.Strings(names)
	return names
}

// Add validates a record and registers a copy of it, replacing any record
// with the same name.
func (s *Store) Add(info *Info) error {
	if err := Validate(info); err != nil {
		return err
	}
	c := info.Clone()

	s.mu.Lock()
	s.cultures[key(c.Name)] = c
	s.matcher = nil
	s.tags = nil
	s.mu.Unlock()

	s.logger.Debug("culture registered", logger.Culture(c.Name))
	return nil
}

// Load reads records through the adapter and registers them. Each record
// overlays its "base" culture (or the closest registered culture when no
// base is given). Invalid records are skipped; their errors are returned
// joined after every valid record has been registered.
func (s *Store) Load(ctx context.Context, adapter Adapter) error {
	if adapter == nil {
		return errors.New("adapter is nil")
	}
	data, err := adapter.Load(ctx)
	if err != nil {
		return err
	}

	pending := make(map[string]map[string]any, len(data))
	for name, fields := range data {
		pending[name] = fields
	}

	var errs []error
	// Records may be based on other records of the same load, so resolve in
	// passes until nothing more can be resolved.
	for len(pending) > 0 {
		progressed := false
		for _, name := range sortedKeys(pending) {
			fields := pending[name]
			baseName, _ := fields["base"].(string)
			if baseName != "" {
				if _, waiting := pending[baseName]; waiting && baseName != name {
					continue
				}
			}
			delete(pending, name)
			progressed = true

			info, err := s.overlay(name, baseName, fields)
			if err == nil {
				err = s.Add(info)
			}
			if err != nil {
				s.logger.WarnContext(ctx, "culture rejected", logger.Culture(name), logger.Error(err))
				errs = append(errs, fmt.Errorf("culture %q: %w", name, err))
			}
		}
		if !progressed {
			for _, name := range sortedKeys(pending) {
				errs = append(errs, errors.Join(ErrUnknownBase, fmt.Errorf("culture %q: cyclic base", name)))
			}
			break
		}
	}

	names := s.Names()
	s.logger.InfoContext(ctx, "cultures loaded", logger.Count(len(names)), slog.Any("cultures", names))
	return errors.Join(errs...)
}

func (s *Store) overlay(name, baseName string, fields map[string]any) (*Info, error) {
	var base *Info
	var err error
	if baseName != "" {
		s.mu.RLock()
		b, ok := s.cultures[key(baseName)]
		s.mu.RUnlock()
		if !ok {
			return nil, errors.Join(ErrUnknownBase, fmt.Errorf("base %q", baseName))
		}
		base = b
	} else {
		base, err = s.Culture(name)
		if err != nil {
			base, _ = s.Culture(Invariant)
		}
	}

	info := base.Clone()
	patch := make(map[string]any, len(fields))
	for k, v := range fields {
		if k != "base" {
			patch[k] = v
		}
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, errors.Join(ErrInvalidCulture, err)
	}
	if err := json.Unmarshal(raw, info); err != nil {
		return nil, errors.Join(ErrInvalidCulture, err)
	}
	info.Name = name

	if cur, ok := fields["currency"].(map[string]any); ok {
		if _, has := cur["decimals"]; !has {
			if d, ok := CurrencyDecimals(name); ok {
				info.Currency.Decimals = d
			}
		}
	}
	return info, nil
}

// CurrencyDecimals returns the standard number of decimals of the ISO 4217
// currency used in the region of the culture.
func CurrencyDecimals(name string) (int, bool) {
	region := RegionOf(name)
	if region == "" {
		return 0, false
	}
	r, err := language.ParseRegion(region)
	if err != nil {
		return 0, false
	}
	unit, ok := currency.FromRegion(r)
	if !ok {
		return 0, false
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale, true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
