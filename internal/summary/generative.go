package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/core/ports/driven"
	"github.com/pustaka-labs/naskah/internal/textproc"
)

// minGenerativeOutput is the shortest LLM response accepted as a
// summary; anything shorter is treated as a refusal or glitch and the
// chain moves on.
const minGenerativeOutput = 50

const generativeMaxTokens = 400

var markdownStripper = strings.NewReplacer("**", "", "__", "", "*", "", "`", "")

// generativeSummary asks the configured LLM for a structured summary
// and accepts the response only when it is substantial.
func (s *Summariser) generativeSummary(ctx context.Context, text string, lang domain.Language) (string, error) {
	input := textproc.TruncateBytes(text, s.charBudget)

	out, err := s.llm.Generate(ctx, buildPrompt(input, lang), driven.GenerateOptions{
		MaxTokens:   generativeMaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("generative summarisation: %w", err)
	}

	out = strings.TrimSpace(markdownStripper.Replace(out))
	if len(out) < minGenerativeOutput {
		return "", fmt.Errorf("generative summarisation: response too short (%d chars)", len(out))
	}
	return out, nil
}

// buildPrompt renders the structured summary request. The section
// headers are fixed so the response is predictable enough to display
// without further parsing.
func buildPrompt(text string, lang domain.Language) string {
	var b strings.Builder
	if lang == domain.LanguageIndonesian {
		b.WriteString("Ringkas teks akademik berikut dalam bahasa Indonesia.\n")
		b.WriteString("Gunakan tepat tiga bagian dengan judul berikut, masing-masing berisi 1-3 poin singkat diawali tanda hubung:\n")
		b.WriteString("Konteks/Permasalahan\nImplementasi Teknis\nTemuan Penting\n")
		b.WriteString("Jangan gunakan format markdown. Jangan menambahkan bagian lain.\n\nTeks:\n")
	} else {
		b.WriteString("Summarise the following academic text.\n")
		b.WriteString("Use exactly three sections with these headers, each holding 1-3 short bullet points starting with a hyphen:\n")
		b.WriteString("Context/Gap\nTechnical Implementation\nCritical Findings\n")
		b.WriteString("Do not use markdown formatting. Do not add any other section.\n\nText:\n")
	}
	b.WriteString(text)
	return b.String()
}
