package persona

import (
	"os"
	"path/filepath"
	"testing"

	"cncbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPersonas = `
personas:
  tech_assist:
    name: "Валера"
    intro: "Введите вопрос по ЧПУ:"
    user_label: "Ты"
    assistant_label: "Валера"
    reply_prefix: "🤖 Валера отвечает:"
    instructions: "Ты — опытный технолог и наладчик ЧПУ."
  legal:
    name: "Юрист"
    intro: "Задайте юридический вопрос:"
    user_label: "Ты"
    assistant_label: "Юрист"
    reply_prefix: "⚖ Юрист отвечает:"
    instructions: "Ты — юридический консультант по законам РФ."
`

func writePersonas(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "personas.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(writePersonas(t, validPersonas))
	require.NoError(t, err)

	tech, ok := reg.Get(domain.FlowTechAssist)
	assert.True(t, ok)
	assert.Equal(t, "Валера", tech.Name)
	assert.Equal(t, "Ты", tech.UserLabel)

	legal, ok := reg.Get(domain.FlowLegal)
	assert.True(t, ok)
	assert.Equal(t, "⚖ Юрист отвечает:", legal.ReplyPrefix)

	_, ok = reg.Get(domain.FlowReport)
	assert.False(t, ok)
}

func TestNewRegistry_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing legal persona",
			content: `
personas:
  tech_assist:
    user_label: "Ты"
    assistant_label: "Валера"
    instructions: "инструкции"
`,
		},
		{
			name: "empty instructions",
			content: `
personas:
  tech_assist:
    user_label: "Ты"
    assistant_label: "Валера"
    instructions: ""
  legal:
    user_label: "Ты"
    assistant_label: "Юрист"
    instructions: "инструкции"
`,
		},
		{
			name: "unknown flow key",
			content: `
personas:
  report:
    user_label: "Ты"
    assistant_label: "Кто-то"
    instructions: "инструкции"
`,
		},
		{
			name:    "not yaml",
			content: "{{{",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(writePersonas(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestRegistry_ReloadKeepsOldOnError(t *testing.T) {
	path := writePersonas(t, validPersonas)

	reg, err := NewRegistry(path)
	require.NoError(t, err)

	// Break the file on disk
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))

	assert.Error(t, reg.Reload())

	// Previous set survives
	tech, ok := reg.Get(domain.FlowTechAssist)
	assert.True(t, ok)
	assert.Equal(t, "Валера", tech.Name)
}

func TestRegistry_Reload(t *testing.T) {
	path := writePersonas(t, validPersonas)

	reg, err := NewRegistry(path)
	require.NoError(t, err)

	updated := `
personas:
  tech_assist:
    name: "Валера 2.0"
    user_label: "Ты"
    assistant_label: "Валера"
    instructions: "Новые инструкции."
  legal:
    user_label: "Ты"
    assistant_label: "Юрист"
    instructions: "Новые инструкции."
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	require.NoError(t, reg.Reload())

	tech, ok := reg.Get(domain.FlowTechAssist)
	assert.True(t, ok)
	assert.Equal(t, "Валера 2.0", tech.Name)
}

func TestComposePrompt(t *testing.T) {
	p := Persona{
		UserLabel:      "Ты",
		AssistantLabel: "Валера",
		Instructions:   "Ты — наладчик ЧПУ.",
	}

	history := []domain.Turn{
		{Speaker: domain.SpeakerUser, Text: "какая подача для алюминия?"},
		{Speaker: domain.SpeakerAssistant, Text: "зависит от фрезы"},
	}

	prompt := ComposePrompt(p, history, "а для стали?")

	expected := "Ты — наладчик ЧПУ.\n\nИстория диалога: " +
		"Ты: какая подача для алюминия?\n" +
		"Валера: зависит от фрезы\n" +
		"Вот вопрос: а для стали?"
	assert.Equal(t, expected, prompt)
}

func TestComposePrompt_EmptyHistory(t *testing.T) {
	p := Persona{
		UserLabel:      "Ты",
		AssistantLabel: "Юрист",
		Instructions:   "Ты — юрист.",
	}

	prompt := ComposePrompt(p, nil, "вопрос про отпуск")

	expected := "Ты — юрист.\n\nИстория диалога: \nВот вопрос: вопрос про отпуск"
	assert.Equal(t, expected, prompt)
}

func TestComposePrompt_Deterministic(t *testing.T) {
	p := Persona{
		UserLabel:      "Ты",
		AssistantLabel: "Валера",
		Instructions:   "инструкции",
	}
	history := []domain.Turn{
		{Speaker: domain.SpeakerUser, Text: "раз"},
		{Speaker: domain.SpeakerAssistant, Text: "два"},
	}

	first := ComposePrompt(p, history, "три")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComposePrompt(p, history, "три"))
	}
}
