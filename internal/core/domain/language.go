package domain

const unknownDescription = "Unknown"

// Language identifies the detected document language.
// Detection is heuristic and limited to the two languages the
// pipeline carries per-language rules for.
type Language string

// Supported languages.
const (
	// LanguageIndonesian is Bahasa Indonesia.
	LanguageIndonesian Language = "id"

	// LanguageEnglish is English. It is also the default when
	// detection is inconclusive.
	LanguageEnglish Language = "en"
)

// IsValid returns true if the language is recognised.
func (l Language) IsValid() bool {
	switch l {
	case LanguageIndonesian, LanguageEnglish:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// Description returns a human-readable description of the language.
func (l Language) Description() string {
	switch l {
	case LanguageIndonesian:
		return "Indonesian"
	case LanguageEnglish:
		return "English"
	default:
		return unknownDescription
	}
}
