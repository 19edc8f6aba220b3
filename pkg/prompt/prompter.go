// Package prompt collects masked values interactively from a terminal.
package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

// Question asks for one masked value.
type Question struct {
	Name     string
	Label    string
	Default  string
	Engine   *mask.Engine
	Required bool
}

// Answer is the resolved response to a Question.
type Answer struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Unmasked string `json:"unmaskedValue"`
}

// Prompter asks questions through a Driver.
type Prompter struct {
	driver Driver
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithDriver overrides the survey-backed driver.
func WithDriver(driver Driver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// New constructs a Prompter.
func New(options ...Option) *Prompter {
	p := &Prompter{}
	for _, option := range options {
		if option != nil {
			option(p)
		}
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver()
	}
	return p
}

// Ask prompts for q, resolves the typed text through the engine and echoes
// the masked value back to the user.
func (p *Prompter) Ask(ctx context.Context, q Question) (Answer, error) {
	if q.Engine == nil {
		return Answer{}, ErrNoEngine
	}

	label := strings.TrimSpace(q.Label)
	if label == "" {
		label = q.Name
	}
	help := q.Engine.Placeholder()
	if help != "" {
		help = "Format: " + help
	}

	raw, err := p.driver.Input(ctx, InputConfig{
		Message:   label,
		Default:   q.Default,
		Help:      help,
		Validator: validator(q),
	})
	if err != nil {
		return Answer{}, err
	}

	q.Engine.Resolve(raw)
	answer := Answer{
		Name:     q.Name,
		Value:    q.Engine.Value(),
		Unmasked: q.Engine.UnmaskedValue(),
	}
	if err := p.driver.Info(ctx, fmt.Sprintf("%s: %s", label, answer.Value)); err != nil {
		return Answer{}, err
	}
	return answer, nil
}

// AskAll asks each question in order and stops at the first error.
func (p *Prompter) AskAll(ctx context.Context, questions []Question) ([]Answer, error) {
	answers := make([]Answer, 0, len(questions))
	for _, q := range questions {
		answer, err := p.Ask(ctx, q)
		if err != nil {
			return answers, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func validator(q Question) func(string) error {
	if !q.Required {
		return nil
	}
	engine := q.Engine
	return func(text string) error {
		if engine.Unmask(text) == "" {
			return ErrRequired
		}
		return nil
	}
}
