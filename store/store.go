package store

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/randalmurphal/scopeconf"
	cfgerrors "github.com/randalmurphal/scopeconf/errors"
)

// Document is a settings document as stored in one scope.
type Document = map[string]any

// Store reads and writes the settings document of each scope.
type Store struct {
	paths scopeconf.Paths
	fs    afero.Fs
	codec Codec
}

// Option configures a Store.
type Option func(*Store)

// WithFs sets the backing filesystem. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// WithCodec sets the document codec. Defaults to YAMLCodec. A nil codec is
// allowed: the store constructs fine but every read and write fails with a
// codec-unavailable error.
func WithCodec(c Codec) Option {
	return func(s *Store) {
		s.codec = c
	}
}

// New creates a store over the given scope locations.
func New(paths scopeconf.Paths, opts ...Option) *Store {
	s := &Store{
		paths: paths,
		fs:    afero.NewOsFs(),
		codec: YAMLCodec{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the location configured for the given scope.
func (s *Store) Path(scope scopeconf.Scope) string {
	return s.paths.For(scope)
}

// Read loads the settings document for a scope. A missing file yields an
// empty document, not an error. An unreadable or undecodable file yields a
// FileError.
func (s *Store) Read(scope scopeconf.Scope) (Document, error) {
	if s.codec == nil {
		return nil, cfgerrors.NewCodecUnavailableError("YAML")
	}

	path := s.paths.For(scope)

	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return nil, cfgerrors.NewFileError("read", path, err)
	}
	if !exists {
		return Document{}, nil
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, cfgerrors.NewFileError("read", path, err)
	}

	var doc Document
	if err := s.codec.Unmarshal(data, &doc); err != nil {
		return nil, cfgerrors.NewFileError("decode", path, err)
	}
	if doc == nil {
		// Empty or all-comment file.
		doc = Document{}
	}
	return doc, nil
}

// Write persists the full settings document for a scope, creating parent
// directories as needed.
func (s *Store) Write(scope scopeconf.Scope, doc Document) error {
	if s.codec == nil {
		return cfgerrors.NewCodecUnavailableError("YAML")
	}

	path := s.paths.For(scope)

	data, err := s.codec.Marshal(doc)
	if err != nil {
		return cfgerrors.NewFileError("encode", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return cfgerrors.NewFileError("mkdir", path, err)
		}
	}

	if err := afero.WriteFile(s.fs, path, data, s.fileMode(scope)); err != nil {
		return cfgerrors.NewFileError("write", path, err)
	}
	return nil
}

// fileMode picks permissions per scope: user settings are private, project
// and local settings live in the repository and should be readable.
func (s *Store) fileMode(scope scopeconf.Scope) os.FileMode {
	if scope == scopeconf.ScopeUser {
		return 0o600
	}
	return 0o644
}
