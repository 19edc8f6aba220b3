package fieldmask

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

// Built-in matcher names.
const (
	MatcherDate       = "date"
	MatcherPhone      = "phone"
	MatcherCreditCard = "credit-card"
	MatcherNumber     = "number"
)

// Built-in patterns.
const (
	PhonePattern      = "[1 ](000) 000-0000"
	CreditCardPattern = "0000 0000 0000 0000"
)

// Matcher returns the mask configuration for a field it recognises.
type Matcher func(field Field) (mask.Config, bool)

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry resolves mask configurations for fields. An explicit "mask" hint
// always wins; otherwise higher priority matchers are consulted first and ties
// fall back to registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher. Empty names and nil matchers are ignored.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the mask configuration for field, if any.
func (r *Registry) Resolve(field Field) (mask.Config, bool) {
	if explicit := hint(field, HintMask); explicit != "" {
		return applyHints(mask.Config{Pattern: explicit}, field), true
	}
	if r == nil {
		return mask.Config{}, false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return mask.Config{}, false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if cfg, ok := entry.match(field); ok {
			return applyHints(cfg, field), true
		}
	}
	return mask.Config{}, false
}

// Build creates one engine per field that resolves to a mask. Fields without
// a mask are left out of the set.
func (r *Registry) Build(fields []Field) (FieldSet, error) {
	engines := make(map[string]*mask.Engine, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		cfg, ok := r.Resolve(field)
		if !ok {
			continue
		}
		engine, err := mask.New(cfg)
		if err != nil {
			return FieldSet{}, fmt.Errorf("fieldmask: field %q: %w", name, err)
		}
		engines[name] = engine
	}
	return FieldSet{engines: engines}, nil
}

func (r *Registry) registerBuiltins() {
	r.Register(MatcherDate, 90, func(field Field) (mask.Config, bool) {
		if normalizedFormat(field) != "date" {
			return mask.Config{}, false
		}
		return mask.Config{Mode: mask.ModeDate}, true
	})

	r.Register(MatcherPhone, 80, func(field Field) (mask.Config, bool) {
		switch normalizedFormat(field) {
		case "tel", "phone", "phone-number":
			return mask.Config{Pattern: PhonePattern}, true
		}
		return mask.Config{}, false
	})

	r.Register(MatcherCreditCard, 70, func(field Field) (mask.Config, bool) {
		switch normalizedFormat(field) {
		case "credit-card", "card-number":
			return mask.Config{Pattern: CreditCardPattern, MaxLength: 16}, true
		}
		return mask.Config{}, false
	})

	r.Register(MatcherNumber, 50, func(field Field) (mask.Config, bool) {
		switch strings.ToLower(strings.TrimSpace(field.Type)) {
		case TypeNumber, TypeInteger:
			return mask.Config{Mode: mask.ModeNumber}, true
		}
		return mask.Config{}, false
	})
}

func normalizedFormat(field Field) string {
	return strings.ToLower(strings.TrimSpace(field.Format))
}
