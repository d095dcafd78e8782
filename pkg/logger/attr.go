package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Culture records a culture name under the key "culture". The invariant
// culture is logged as "invariant".
func Culture(name string) slog.Attr {
	if name == "" {
		name = "invariant"
	}
	return slog.String("culture", name)
}

// TypeName records a type manager name under the key "type".
func TypeName(name string) slog.Attr {
	return slog.String("type", name)
}

// Alias records a type manager alias under the key "alias".
func Alias(name string) slog.Attr {
	return slog.String("alias", name)
}

// Source records where data was loaded from under the key "source".
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
