package culture

import "errors"

var (
	ErrCultureNotFound = errors.New("culture not found")
	ErrInvalidCulture  = errors.New("invalid culture record")
	ErrUnknownBase     = errors.New("base culture not found")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading culture file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read culture file")
	ErrFailedToParseFile    = errors.New("failed to parse culture file")

	// Directory operations
	ErrFailedToAccessDirectory          = errors.New("failed to access directory")
	ErrLoadingDirectoryCancelled        = errors.New("loading from directory cancelled")
	ErrFailedToReadDirectory            = errors.New("failed to read directory")
	ErrContextCancelledDuringProcessing = errors.New("context canceled while processing directory")

	// Embedded filesystem operations
	ErrLoadingCulturesCancelled = errors.New("loading cultures canceled before starting")
)
