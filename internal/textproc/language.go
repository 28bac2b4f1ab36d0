package textproc

import (
	"regexp"
	"strings"

	"github.com/pustaka-labs/naskah/internal/core/domain"
)

// DefaultMarkerThreshold is the Indonesian marker-word count at or
// above which text is classified as Indonesian. Tuned empirically on
// student uploads; override via DetectLanguageWithThreshold.
const DefaultMarkerThreshold = 4

// markerPattern matches any Indonesian marker word at word boundaries.
var markerPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(indonesianMarkers, "|") + `)\b`)

// DetectLanguage classifies text as Indonesian or English by counting
// Indonesian marker words. It is deterministic and pure; text too
// short to carry enough markers defaults to English.
func DetectLanguage(text string) domain.Language {
	return DetectLanguageWithThreshold(text, DefaultMarkerThreshold)
}

// DetectLanguageWithThreshold classifies text using a caller-supplied
// marker count threshold.
func DetectLanguageWithThreshold(text string, threshold int) domain.Language {
	if threshold <= 0 {
		threshold = DefaultMarkerThreshold
	}
	if strings.TrimSpace(text) == "" {
		return domain.LanguageEnglish
	}

	matches := markerPattern.FindAllStringIndex(text, threshold)
	if len(matches) >= threshold {
		return domain.LanguageIndonesian
	}
	return domain.LanguageEnglish
}
