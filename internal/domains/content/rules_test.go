package content

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func TestNameRules(t *testing.T) {
	assert.NoError(t, validation.Validate("Tech For All", NameRules...))
	assert.NoError(t, validation.Validate("Ação Solidária", NameRules...))

	assert.Error(t, validation.Validate("!!!", NameRules...))
	assert.Error(t, validation.Validate("", NameRules...))

	name := "--- ..."
	assert.Error(t, validation.Validate(&name, NameRules...))
}

func TestParagraphRules_AcceptedParagraphsAreUnchanged(t *testing.T) {
	paragraphs := []string{
		"Tom & Jerry: 2 < 3",
		"Já escapado: Tom &amp; Jerry",
		`Aspas "duplas" e 'simples'`,
		"<b>negrito</b> e <em>ênfase</em>",
		`Veja <a href="https://ifd.org.br/sobre">o instituto</a>.`,
		"Linha 1<br>Linha 2",
	}
	before := append([]string(nil), paragraphs...)

	assert.NoError(t, validation.Validate(paragraphs, ParagraphRules...))
	assert.Equal(t, before, paragraphs)
}

func TestParagraphRules_RejectsDisallowedMarkup(t *testing.T) {
	tests := []struct {
		name      string
		paragraph string
	}{
		{"script only", "<script>alert(1)</script>"},
		{"script inside text", "Olá <script>alert(1)</script> mundo"},
		{"event handler", `<p onclick="x()">Oi</p>`},
		{"javascript link", `<a href="javascript:alert(1)">clique</a>`},
		{"iframe", `<iframe src="https://example.com"></iframe>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, validation.Validate([]string{tt.paragraph}, ParagraphRules...))
		})
	}
}

func TestParagraphRules_Bounds(t *testing.T) {
	assert.Error(t, validation.Validate([]string{}, ParagraphRules...))
	assert.Error(t, validation.Validate([]string{"ok", ""}, ParagraphRules...))
	assert.Error(t, validation.Validate(make([]string, MaxParagraphs+1), ParagraphRules...))
}
