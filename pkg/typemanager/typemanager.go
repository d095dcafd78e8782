package typemanager

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/plblum/jTAC-sub002/pkg/culture"
)

// NativeKind identifies the in-memory representation produced by ToValue.
type NativeKind string

const (
	NativeInteger  NativeKind = "integer"
	NativeNumber   NativeKind = "number"
	NativeBoolean  NativeKind = "boolean"
	NativeString   NativeKind = "string"
	NativeDate     NativeKind = "date"
	NativeDateTime NativeKind = "datetime"
	NativeTime     NativeKind = "time"
)

// StorageKind identifies the neutral representation used for storage.
type StorageKind string

const (
	StorageInteger  StorageKind = "integer"
	StorageFloat    StorageKind = "float"
	StorageString   StorageKind = "string"
	StorageDate     StorageKind = "date"
	StorageTime     StorageKind = "time"
	StorageDateTime StorageKind = "datetime"
	StorageBoolean  StorageKind = "boolean"
)

// TypeManager parses, formats, compares and validates values of one type.
// A nil value means "no value": ToValue("") returns (nil, nil) and
// ToString(nil) returns ("", nil).
//
// Setters are not safe for concurrent use. Once configured, a TypeManager
// may be used by many goroutines.
type TypeManager interface {
	TypeName() string
	NativeKind() NativeKind
	StorageKind() StorageKind

	// ToValue converts culture formatted text into the native value.
	ToValue(text string) (any, error)
	// ToString formats a native value using the culture.
	ToString(value any) (string, error)
	// ToValueNeutral converts the culture independent storage form.
	ToValueNeutral(text string) (any, error)
	// ToStringNeutral produces the culture independent storage form.
	ToStringNeutral(value any) (string, error)

	// Compare returns -1, 0 or 1. Strings are converted with ToValue
	// first. nil sorts before any value.
	Compare(a, b any) (int, error)
	IsNull(value any) bool
	// IsValidChar reports whether ch may appear in text given to ToValue.
	IsValidChar(ch rune) bool
	// ToNumber projects a value onto a number for range and difference
	// checks. The bool result is false for nil.
	ToNumber(value any) (float64, bool, error)

	SetOption(name string, value any) error
	Configure(opts Options) error
}

// Options is a flat set of option values keyed by option name.
type Options map[string]any

var defaultProvider = sync.OnceValue(func() culture.Provider {
	return culture.NewStore()
})

// DefaultProvider returns the shared built-in culture store used when a
// constructor receives a nil provider.
func DefaultProvider() culture.Provider {
	return defaultProvider()
}

// optionTarget is implemented by every type manager. setOption returns
// false for names it does not know.
type optionTarget interface {
	TypeName() string
	setOption(name string, value any) (bool, error)
	invalidate()
}

func setOption(t optionTarget, name string, value any) error {
	handled, err := t.setOption(name, value)
	if err != nil {
		return &ConfigError{TypeName: t.TypeName(), Option: name, Value: value, Err: errors.Join(ErrInvalidOption, err)}
	}
	if !handled {
		return &ConfigError{TypeName: t.TypeName(), Option: name, Value: value, Err: ErrUnknownOption}
	}
	t.invalidate()
	return nil
}

// configure applies options in name order so results do not depend on map
// iteration.
func configure(tm TypeManager, opts Options) error {
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := tm.SetOption(name, opts[name]); err != nil {
			return err
		}
	}
	return nil
}

// base holds the culture binding shared by every type manager.
type base struct {
	typeName    string
	provider    culture.Provider
	cultureName string
	info        lazy[*culture.Info]
}

func newBase(typeName string, provider culture.Provider) base {
	if provider == nil {
		provider = DefaultProvider()
	}
	return base{typeName: typeName, provider: provider}
}

// TypeName returns the registered class name of the type manager.
func (b *base) TypeName() string { return b.typeName }

// CultureName returns the configured culture name. An empty name selects the
// provider default.
func (b *base) CultureName() string { return b.cultureName }

// Culture returns the resolved culture record.
func (b *base) Culture() (*culture.Info, error) {
	return b.info.get(func() (*culture.Info, error) {
		return b.provider.Culture(b.cultureName)
	})
}

func (b *base) setOption(name string, value any) (bool, error) {
	switch name {
	case "cultureName":
		s, err := asString(value)
		if err != nil {
			return true, err
		}
		if _, err := b.provider.Culture(s); err != nil {
			return true, err
		}
		b.cultureName = s
		return true, nil
	}
	return false, nil
}

func (b *base) invalidate() {
	b.info.reset()
}

func (b *base) fail(err error) error {
	if err == nil {
		return nil
	}
	return stampTypeName(err, b.typeName)
}

func (b *base) unsupported(value any) error {
	return &ConversionError{TypeName: b.typeName, Text: fmt.Sprint(value), Reason: fmt.Sprintf("unsupported value type %T", value)}
}

func compareOrdered[T int | int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareNil orders nil before any value. ok is false when neither is nil.
func compareNil(a, b any) (int, bool) {
	switch {
	case a == nil && b == nil:
		return 0, true
	case a == nil:
		return -1, true
	case b == nil:
		return 1, true
	}
	return 0, false
}
