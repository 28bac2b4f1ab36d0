package summary

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pustaka-labs/naskah/internal/core/ports/driven"
	"github.com/pustaka-labs/naskah/internal/textproc"
)

// Decoding bounds for the local sequence-to-sequence model.
const (
	abstractiveMinLength = 30
	abstractiveMaxLength = 150
	abstractiveNoRepeat  = 3
	maxTechnicalBullets  = 3
)

var (
	// First-person rewrites. Academic summaries read in third person;
	// sentence-start "We" must never survive post-processing.
	weStartPattern  = regexp.MustCompile(`(^|[.!?]\s+)We\b`)
	ourStartPattern = regexp.MustCompile(`(^|[.!?]\s+)Our\b`)

	// metricPattern catches performance statements with numeric values.
	metricPattern = regexp.MustCompile(`(?i)\b(accuracy|precision|recall|f1(?:[ -]score)?|rmse|mae|auc|error rate)\b[^.\n]{0,40}?\d+(?:\.\d+)?\s*%?`)

	// modelLexicon names methods worth surfacing as technical detail.
	modelLexicon = []string{
		"CNN", "LSTM", "BERT", "SVM", "Random Forest", "XGBoost",
		"ResNet", "Transformer", "Naive Bayes", "KNN", "GRU", "TF-IDF",
	}

	// Finding-sentence indicators. Negative findings take priority:
	// a reader must not mistake "no significant relationship" prose
	// for a positive result.
	negativeFindingPattern = regexp.MustCompile(`(?i)\bno significant\b|\bnot significant\b|\bdid not\b|\bfailed to\b`)
	positiveFindingPattern = regexp.MustCompile(`(?i)\bsignificant\b|\boutperform\w*\b|\bachiev\w+\b|\bimprov\w+\b|\bresults? show\w*\b`)
)

// abstractiveSummary runs the local model on the truncated core text
// and post-processes the output into third-person register with
// appended technical detail bullets.
func (s *Summariser) abstractiveSummary(ctx context.Context, text string) (string, error) {
	input := textproc.TruncateBytes(text, s.charBudget)

	out, err := s.abstractive.Summarise(ctx, input, driven.SummariseOptions{
		MinLength:     abstractiveMinLength,
		MaxLength:     abstractiveMaxLength,
		NoRepeatNGram: abstractiveNoRepeat,
	})
	if err != nil {
		return "", fmt.Errorf("abstractive summarisation: %w", err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("abstractive summarisation: empty output")
	}

	out = rewriteFirstPerson(out)
	if bullets := technicalBullets(text); len(bullets) > 0 {
		out = out + "\n\nTechnical details:\n- " + strings.Join(bullets, "\n- ")
	}
	return out, nil
}

// rewriteFirstPerson converts sentence-start first-person phrasing to
// third person.
func rewriteFirstPerson(text string) string {
	text = weStartPattern.ReplaceAllString(text, "${1}The authors")
	text = ourStartPattern.ReplaceAllString(text, "${1}The study's")
	return text
}

// technicalBullets pulls concrete detail out of the full text: numeric
// performance metrics, named methods from the lexicon, and the single
// best finding sentence.
func technicalBullets(text string) []string {
	var bullets []string

	for _, metric := range metricPattern.FindAllString(text, maxTechnicalBullets) {
		bullets = append(bullets, strings.TrimSpace(metric))
	}

	var methods []string
	for _, name := range modelLexicon {
		if containsWord(text, name) {
			methods = append(methods, name)
		}
	}
	if len(methods) > 0 {
		if len(methods) > maxTechnicalBullets {
			methods = methods[:maxTechnicalBullets]
		}
		bullets = append(bullets, "Methods: "+strings.Join(methods, ", "))
	}

	if finding := bestFindingSentence(text); finding != "" {
		bullets = append(bullets, finding)
	}
	return bullets
}

// bestFindingSentence returns the strongest finding statement in the
// text, preferring explicitly negative findings over positive ones.
func bestFindingSentence(text string) string {
	sentences := usableSentences(text)

	for _, sentence := range sentences {
		if negativeFindingPattern.MatchString(sentence) {
			return sentence
		}
	}
	best, bestHits := "", 0
	for _, sentence := range sentences {
		hits := len(positiveFindingPattern.FindAllString(sentence, -1))
		if hits > bestHits {
			best, bestHits = sentence, hits
		}
	}
	return best
}

// containsWord reports a case-sensitive whole-word match, so "CNN"
// does not fire inside an unrelated acronym.
func containsWord(text, word string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], word)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
