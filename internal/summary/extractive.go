package summary

import (
	"regexp"
	"strings"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

// Sentence category markers for extractive scoring. Each category
// selects at most one sentence; position in the document biases the
// choice (goals appear early, results late).
var (
	goalMarkersEnglish   = []string{"aims to", "objective", "purpose", "goal", "this study", "this paper", "propose", "presents", "we present", "investigate"}
	methodMarkersEnglish = []string{"method", "approach", "technique", "algorithm", "using", "dataset", "experiment", "implemented", "evaluated"}
	resultMarkersEnglish = []string{"result", "show", "shows", "showed", "found", "achieved", "conclude", "performance", "outperform", "accuracy"}

	goalMarkersIndonesian   = []string{"bertujuan", "tujuan", "penelitian ini", "makalah ini", "studi ini", "mengusulkan"}
	methodMarkersIndonesian = []string{"metode", "pendekatan", "teknik", "algoritma", "menggunakan", "eksperimen", "diimplementasikan", "dievaluasi"}
	resultMarkersIndonesian = []string{"hasil", "menunjukkan", "ditemukan", "disimpulkan", "kesimpulan", "kinerja", "akurasi"}

	sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)

	// Data-leak filters: sentences carrying raw dates or several
	// decimal data points are table fragments, not prose.
	datePattern    = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|januari|februari|maret|april|mei|juni|juli|agustus|oktober|desember)\s+\d{4}\b`)
	decimalPattern = regexp.MustCompile(`\d+\.\d+`)

	// Leading phrases normalised into academic register.
	prefixRewritesEnglish = [][2]string{
		{"In this paper, we", "This study"},
		{"In this paper we", "This study"},
		{"In this study, we", "This study"},
		{"This paper", "This study"},
		{"We", "This study"},
	}
	prefixRewritesIndonesian = [][2]string{
		{"Dalam penelitian ini, kami", "Studi ini"},
		{"Dalam penelitian ini kami", "Studi ini"},
		{"Penelitian ini", "Studi ini"},
		{"Makalah ini", "Studi ini"},
		{"Kami", "Studi ini"},
	}
)

// maxDecimalsPerSentence is the data-point count above which a sentence
// is treated as leaked tabular data.
const maxDecimalsPerSentence = 2

// extractiveSummary picks the best goal, method and result sentence
// from the text and joins them. Fully deterministic, no model.
func extractiveSummary(text string, lang domain.Language) string {
	sentences := usableSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	goal, method, result := markersFor(lang)
	n := len(sentences)

	var picked []string
	seen := make(map[int]struct{})
	for _, cat := range []struct {
		markers []string
		bonus   func(pos float64) float64
	}{
		{goal, func(pos float64) float64 { return 1 - pos }},
		{method, func(pos float64) float64 { return 0.5 }},
		{result, func(pos float64) float64 { return pos }},
	} {
		bestIdx, bestScore := -1, 0.0
		for i, sentence := range sentences {
			hits := markerHits(sentence, cat.markers)
			if hits == 0 {
				continue
			}
			pos := 0.0
			if n > 1 {
				pos = float64(i) / float64(n-1)
			}
			score := float64(hits) + cat.bonus(pos)
			if score > bestScore {
				bestIdx, bestScore = i, score
			}
		}
		if bestIdx >= 0 {
			if _, dup := seen[bestIdx]; !dup {
				seen[bestIdx] = struct{}{}
				picked = append(picked, sentences[bestIdx])
			}
		}
	}

	if len(picked) == 0 {
		// No category fired: fall back to the opening sentence so the
		// chain still produces prose rather than nothing.
		picked = sentences[:1]
	}

	picked[0] = normalisePrefix(picked[0], lang)
	return strings.Join(picked, " ")
}

// usableSentences splits the text into sentences and drops the ones
// that carry raw dates or clusters of decimal data points.
func usableSentences(text string) []string {
	var out []string
	for _, raw := range sentencePattern.FindAllString(text, -1) {
		sentence := strings.TrimSpace(strings.ReplaceAll(raw, "\n", " "))
		if len(sentence) < 20 {
			continue
		}
		if datePattern.MatchString(sentence) {
			continue
		}
		if len(decimalPattern.FindAllString(sentence, -1)) > maxDecimalsPerSentence {
			continue
		}
		out = append(out, sentence)
	}
	return out
}

func markersFor(lang domain.Language) (goal, method, result []string) {
	if lang == domain.LanguageIndonesian {
		return goalMarkersIndonesian, methodMarkersIndonesian, resultMarkersIndonesian
	}
	return goalMarkersEnglish, methodMarkersEnglish, resultMarkersEnglish
}

func markerHits(sentence string, markers []string) int {
	lower := strings.ToLower(sentence)
	hits := 0
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			hits++
		}
	}
	return hits
}

// normalisePrefix rewrites the leading phrase of the first summary
// sentence into a neutral academic register.
func normalisePrefix(sentence string, lang domain.Language) string {
	rewrites := prefixRewritesEnglish
	if lang == domain.LanguageIndonesian {
		rewrites = prefixRewritesIndonesian
	}
	for _, rw := range rewrites {
		if strings.HasPrefix(sentence, rw[0]+" ") {
			return rw[1] + strings.TrimPrefix(sentence, rw[0])
		}
	}
	return sentence
}
