// Package culture supplies the per-culture formatting rules consumed by the
// typemanager package: decimal and group separators, group sizes, negative and
// positive symbol patterns for numbers, currency and percent, plus date and
// time patterns, month and day names, AM/PM designators and the two-digit
// year pivot.
//
// # Architecture
//
// The package revolves around the read-only Provider interface. Store is the
// provided implementation: a thread-safe set of Info records seeded with the
// built-in cultures (invariant, en-US, en-GB, fr-FR, de-DE, nl-NL, hi-IN, ja-JP,
// sv-SE). Additional cultures are loaded through an Adapter (in-memory map,
// single file, directory or embed.FS) and a Parser (YAML or JSON). Each
// loaded record names a base culture and only overrides the fields it lists.
//
// Culture names are matched case-insensitively. When no exact record exists
// Store falls back to a record of the same base language (fr-CA -> fr-FR)
// using golang.org/x/text/language.
//
// # Usage
//
//	store := culture.NewStore(culture.WithDefaultCulture("en-US"))
//	adapter := culture.NewDirectoryAdapter(culture.NewYAMLParser(), "./cultures")
//	if err := store.Load(ctx, adapter); err != nil {
//		log.Fatalf("failed to load cultures: %v", err)
//	}
//
//	info, err := store.Culture("fr-FR")
//	// info.Number.DecimalSep == ","
//
// # File format
//
//	fr-CA:
//	  base: fr-FR
//	  currency:
//	    symbol: "$"
//	    negPattern: "(n $)"
//	  dateTime:
//	    shortDatePattern: "yyyy-MM-dd"
//	    shortDateSep: "-"
//
// When a record overrides the currency block without a "decimals" entry the
// decimals are taken from the ISO 4217 currency of the culture's region.
//
// # Error Handling
//
// Sentinel errors such as ErrCultureNotFound and ErrInvalidCulture can be
// checked with errors.Is. Loading errors are joined with their cause.
package culture
