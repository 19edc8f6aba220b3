package maskconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

// Option configures loading.
type Option func(*loadOptions)

type loadOptions struct {
	logger *slog.Logger
}

// WithLogger routes loader diagnostics to logger instead of slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

type entry struct {
	definition Definition
	config     mask.Config
	source     string
}

// Store holds validated mask definitions keyed by name.
type Store struct {
	masks map[string]entry
}

// LoadFS walks fsys and parses every JSON/YAML file. A nil fsys or a tree
// without mask files yields an empty store.
func LoadFS(fsys fs.FS, options ...Option) (*Store, error) {
	opts := loadOptions{logger: slog.Default()}
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}

	store := &Store{masks: make(map[string]entry)}
	if fsys == nil {
		return store, nil
	}

	files := 0
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !isMaskFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("maskconfig: read %s: %w", path, err)
		}
		files++
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}

	opts.logger.Debug("mask definitions loaded", "files", files, "masks", len(store.masks))
	return store, nil
}

// Parse builds a store from a single document. source names the document in
// error messages.
func Parse(data []byte, source string) (*Store, error) {
	store := &Store{masks: make(map[string]entry)}
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	for rawName, definition := range doc.Masks {
		name := strings.TrimSpace(rawName)
		if name == "" {
			return fmt.Errorf("maskconfig: file %s defines a mask with an empty name", source)
		}
		if existing, exists := s.masks[name]; exists {
			return fmt.Errorf("maskconfig: duplicate mask %q (files %s and %s)", name, existing.source, source)
		}
		cfg := definition.Config()
		engine, err := mask.New(cfg)
		if err != nil {
			return fmt.Errorf("maskconfig: file %s mask %q: %w", source, name, err)
		}
		s.masks[name] = entry{definition: definition, config: engine.Config(), source: source}
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("maskconfig: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("maskconfig: parse %s: %w", source, err)
	}
	return doc, nil
}

// Config returns the resolved configuration of the named mask, defaults
// included.
func (s *Store) Config(name string) (mask.Config, bool) {
	if s == nil {
		return mask.Config{}, false
	}
	e, ok := s.masks[name]
	return e.config, ok
}

// Definition returns the named mask as written in its document.
func (s *Store) Definition(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	e, ok := s.masks[name]
	return e.definition, ok
}

// Engine builds a new engine for the named mask. Each input field should own
// its engine, so callers get a fresh instance per call.
func (s *Store) Engine(name string) (*mask.Engine, error) {
	cfg, ok := s.Config(name)
	if !ok {
		return nil, fmt.Errorf("maskconfig: mask %q not found", name)
	}
	return mask.New(cfg)
}

// Names lists the mask names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.masks))
	for name := range s.masks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any masks.
func (s *Store) Empty() bool {
	return s == nil || len(s.masks) == 0
}

func isMaskFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
