// Package inputmask is the entry point of the input masking engine. It
// re-exports the engine types from pkg/mask and the definition loader from
// pkg/maskconfig so most callers need a single import.
package inputmask

import (
	"io/fs"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/maskconfig"
)

// Config aliases mask.Config.
type Config = mask.Config

// Engine aliases mask.Engine.
type Engine = mask.Engine

// Mode aliases mask.Mode.
type Mode = mask.Mode

// ConfigurationError aliases mask.ConfigurationError.
type ConfigurationError = mask.ConfigurationError

// Session aliases mask.Session for callers tracking keystrokes.
type Session = mask.Session

// Store aliases maskconfig.Store.
type Store = maskconfig.Store

const (
	ModeLiteral = mask.ModeLiteral
	ModeNumber  = mask.ModeNumber
	ModeDate    = mask.ModeDate
)

// ErrConfiguration matches every ConfigurationError via errors.Is.
var ErrConfiguration = mask.ErrConfiguration

// New builds an engine for one input field.
func New(cfg Config) (*Engine, error) {
	return mask.New(cfg)
}

// MustNew builds an engine and panics on configuration errors.
func MustNew(cfg Config) *Engine {
	return mask.MustNew(cfg)
}

// NewSession tracks keystrokes for an engine so single-character deletions
// remove raw characters instead of being re-masked.
func NewSession(engine *Engine) *Session {
	return mask.NewSession(engine)
}

// LoadFS loads named mask definitions from JSON/YAML files in fsys.
func LoadFS(fsys fs.FS, options ...maskconfig.Option) (*Store, error) {
	return maskconfig.LoadFS(fsys, options...)
}
