package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ClinicSplit/models"
)

func TestDetermineOwnerProfessionalIDFromSetting(t *testing.T) {
	professionals := []models.Professional{
		{ID: "prof-v", Name: "Valquíria"},
		{ID: "prof-b", Name: "Bruno"},
	}
	settings := []models.SystemSetting{
		{Key: models.SettingOwnerProfessionalID, Value: "prof-b"},
	}

	assert.Equal(t, "prof-b", DetermineOwnerProfessionalID(professionals, settings))
}

func TestDetermineOwnerProfessionalIDHeuristicFallback(t *testing.T) {
	professionals := []models.Professional{
		{ID: "prof-v", Name: "Valquíria Santos"},
		{ID: "prof-b", Name: "Bruno"},
	}

	assert.Equal(t, "prof-b", DetermineOwnerProfessionalID(professionals, nil))
}

func TestDetermineOwnerProfessionalIDEmptySettingIgnored(t *testing.T) {
	professionals := []models.Professional{{ID: "prof-b", Name: "Bruno"}}
	settings := []models.SystemSetting{
		{Key: models.SettingOwnerProfessionalID, Value: ""},
	}

	assert.Equal(t, "prof-b", DetermineOwnerProfessionalID(professionals, settings))
}

func TestDetermineOwnerProfessionalIDUnresolvable(t *testing.T) {
	professionals := []models.Professional{{ID: "prof-v", Name: "Valquiria"}}

	assert.Equal(t, "", DetermineOwnerProfessionalID(professionals, nil))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "valquiria", normalizeName("Valquíria"))
	assert.Equal(t, "endolaser capilar", normalizeName("Endolaser Capilar"))
	assert.Equal(t, "joao", normalizeName("JOÃO"))
}
