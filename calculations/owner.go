package calculations

import (
	"log"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"ClinicSplit/models"
)

// normalizeName lowercases a name and strips diacritics, so that
// "Valquíria" and "valquiria" compare equal.
func normalizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}
	return strings.ToLower(stripped)
}

// DetermineOwnerProfessionalID resolves the clinic owner: the explicit
// owner_professional_id setting when present, otherwise the first
// professional whose name does not match the legacy professional pattern.
// The heuristic exists only as a migration shim for installations that
// predate the setting and is logged when it fires. Returns "" when the
// owner cannot be determined.
func DetermineOwnerProfessionalID(professionals []models.Professional, settings []models.SystemSetting) string {
	for _, setting := range settings {
		if setting.Key == models.SettingOwnerProfessionalID && setting.Value != "" {
			return setting.Value
		}
	}

	for _, professional := range professionals {
		if !strings.Contains(normalizeName(professional.Name), legacyProfessionalKey) {
			log.Printf("Warning: owner_professional_id setting missing, resolved owner %s by name heuristic", professional.ID)
			return professional.ID
		}
	}
	return ""
}
