package driven

import "github.com/pustaka-labs/naskah/internal/core/domain"

// ConfigStore persists application settings.
type ConfigStore interface {
	// Load reads settings, applying defaults for missing fields.
	// A missing config file returns defaults, not an error.
	Load() (domain.AppSettings, error)

	// Save writes settings.
	Save(settings domain.AppSettings) error
}
