package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguage_IsValid(t *testing.T) {
	tests := []struct {
		name string
		lang Language
		want bool
	}{
		{"indonesian", LanguageIndonesian, true},
		{"english", LanguageEnglish, true},
		{"empty", Language(""), false},
		{"unknown", Language("fr"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lang.IsValid())
		})
	}
}

func TestLanguage_String(t *testing.T) {
	assert.Equal(t, "id", LanguageIndonesian.String())
	assert.Equal(t, "en", LanguageEnglish.String())
}

func TestLanguage_Description(t *testing.T) {
	assert.Equal(t, "Indonesian", LanguageIndonesian.Description())
	assert.Equal(t, "English", LanguageEnglish.Description())
	assert.Equal(t, "Unknown", Language("xx").Description())
}
