package persona

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cncbot/internal/domain"

	"github.com/goccy/go-yaml"
)

// Persona is the fixed configuration of one AI dialogue flow: the
// instructions prepended to every prompt plus the labels used when
// rendering history and replies.
type Persona struct {
	Name           string `yaml:"name"`
	Intro          string `yaml:"intro"`
	UserLabel      string `yaml:"user_label"`
	AssistantLabel string `yaml:"assistant_label"`
	ReplyPrefix    string `yaml:"reply_prefix"`
	Instructions   string `yaml:"instructions"`
}

type personasFile struct {
	Personas map[string]Persona `yaml:"personas"`
}

// Registry holds the loaded personas and supports hot reload
type Registry struct {
	mux      sync.RWMutex
	path     string
	personas map[domain.Flow]Persona
}

// NewRegistry loads personas from the given YAML file
func NewRegistry(path string) (*Registry, error) {
	personas, err := load(path)
	if err != nil {
		return nil, err
	}
	return &Registry{path: path, personas: personas}, nil
}

// NewStatic builds a registry from an in-memory persona set, bypassing
// the file. Reload and Watch are not usable on it.
func NewStatic(personas map[domain.Flow]Persona) *Registry {
	return &Registry{personas: personas}
}

// Get returns the persona for a flow
func (r *Registry) Get(flow domain.Flow) (Persona, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	p, ok := r.personas[flow]
	return p, ok
}

// Reload re-reads the personas file. On error the previous set is kept.
func (r *Registry) Reload() error {
	personas, err := load(r.path)
	if err != nil {
		return err
	}

	r.mux.Lock()
	r.personas = personas
	r.mux.Unlock()
	return nil
}

// Path returns the file the registry was loaded from
func (r *Registry) Path() string {
	return r.path
}

func load(path string) (map[domain.Flow]Persona, error) {
	input, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open personas file: %w", err)
	}
	defer input.Close()

	var file personasFile
	if err := yaml.NewDecoder(input).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode personas file: %w", err)
	}

	personas := make(map[domain.Flow]Persona, len(file.Personas))
	for key, p := range file.Personas {
		flow := domain.Flow(key)
		if err := validate(flow, p); err != nil {
			return nil, err
		}
		personas[flow] = p
	}

	for _, required := range []domain.Flow{domain.FlowTechAssist, domain.FlowLegal} {
		if _, ok := personas[required]; !ok {
			return nil, fmt.Errorf("persona %q is missing", required)
		}
	}

	return personas, nil
}

func validate(flow domain.Flow, p Persona) error {
	switch flow {
	case domain.FlowTechAssist, domain.FlowLegal:
	default:
		return fmt.Errorf("persona key %q does not name a dialogue flow", flow)
	}
	if strings.TrimSpace(p.Instructions) == "" {
		return fmt.Errorf("persona %q has empty instructions", flow)
	}
	if p.UserLabel == "" || p.AssistantLabel == "" {
		return fmt.Errorf("persona %q has empty speaker labels", flow)
	}
	return nil
}

// ComposePrompt builds the completion prompt: instructions, the rendered
// history and the current question. The output is fully determined by its
// inputs; tests rely on that.
func ComposePrompt(p Persona, history []domain.Turn, question string) string {
	var b strings.Builder
	b.WriteString(p.Instructions)
	b.WriteString("\n\nИстория диалога: ")

	for i, turn := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderTurn(p, turn))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Вот вопрос: %s", question))
	return b.String()
}

func renderTurn(p Persona, turn domain.Turn) string {
	label := p.UserLabel
	if turn.Speaker == domain.SpeakerAssistant {
		label = p.AssistantLabel
	}
	return label + ": " + turn.Text
}
