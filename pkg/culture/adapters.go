package culture

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// Adapter loads culture records keyed by culture name. Each record is the
// raw field map of an Info plus an optional "base" entry.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves records from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the Adapter interface.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter reads every record from a single file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
// Returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the Adapter interface.
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	content, err := readWithContext(ctx, func() ([]byte, error) { return os.ReadFile(a.path) })
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("culture file '%s' is empty", a.path)
	}

	records, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return records, nil
}

// DirectoryAdapter reads every file of a directory the parser supports.
// Records from later files (in name order) replace earlier ones.
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter creates a new DirectoryAdapter instance.
// Returns nil if parser is nil or path is empty.
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &DirectoryAdapter{parser: parser, path: path}
}

// Load implements the Adapter interface.
func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	stat, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("path '%s' is not a directory", a.path)
	}

	records, err := loadDir(ctx, os.DirFS(a.path), ".", a.parser)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no culture files found in directory '%s'", a.path)
	}
	return records, nil
}

// EmbeddedFsAdapter reads culture files from an embed.FS directory.
type EmbeddedFsAdapter struct {
	parser Parser
	fs     embed.FS
	dir    string
}

// NewEmbeddedFsAdapter creates a new EmbeddedFsAdapter instance.
// Returns nil if parser is nil or dir is empty.
func NewEmbeddedFsAdapter(parser Parser, fs embed.FS, dir string) *EmbeddedFsAdapter {
	if parser == nil || dir == "" {
		return nil
	}
	return &EmbeddedFsAdapter{parser: parser, fs: fs, dir: dir}
}

// Load implements the Adapter interface.
func (a *EmbeddedFsAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCulturesCancelled, err)
	}
	records, err := loadDir(ctx, a.fs, a.dir, a.parser)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no culture files found in embedded directory '%s'", a.dir)
	}
	return records, nil
}

func loadDir(ctx context.Context, fsys fs.FS, dir string, parser Parser) (map[string]map[string]any, error) {
	entries, err := readDirWithContext(ctx, fsys, dir)
	if err != nil {
		return nil, err
	}

	result := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if ext == "" || !parser.SupportsFileExtension(ext) {
			continue
		}
		if ctx.Err() != nil {
			return nil, errors.Join(ErrContextCancelledDuringProcessing, ctx.Err())
		}

		filePath := path.Join(dir, entry.Name())
		content, err := readWithContext(ctx, func() ([]byte, error) { return fs.ReadFile(fsys, filePath) })
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", filePath, err))
		}
		if len(content) == 0 {
			continue
		}

		records, err := parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}
		for name, fields := range records {
			result[name] = fields
		}
	}
	return result, nil
}

func readDirWithContext(ctx context.Context, fsys fs.FS, dir string) ([]fs.DirEntry, error) {
	done := make(chan struct{})
	var entries []fs.DirEntry
	var readErr error

	go func() {
		entries, readErr = fs.ReadDir(fsys, dir)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingDirectoryCancelled, ctx.Err())
	case <-done:
	}
	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, readErr)
	}
	return entries, nil
}

// readWithContext runs read in a goroutine so a cancelled context returns
// immediately.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}
	return content, readErr
}
