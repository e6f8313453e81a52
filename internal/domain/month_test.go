package domain_test

import (
	"testing"

	"github.com/andresuchdata/dss-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth_Label(t *testing.T) {
	cases := map[string]string{
		"2025-01": "January 2025",
		"2025-09": "September 2025",
		"2025-12": "December 2025",
		"2026-3":  "March 2026",
		"":        "September 2025",
	}

	for raw, want := range cases {
		m, err := domain.ParseMonth(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, m.Label(), raw)
	}
}

func TestParseMonth_String(t *testing.T) {
	m, err := domain.ParseMonth("2026-3")
	require.NoError(t, err)
	assert.Equal(t, "2026-03", m.String())
	assert.Equal(t, domain.Month{Year: 2026, Month: 3}, m)
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, raw := range []string{"2025", "2025-09-01", "2025-ab", "abcd-09", "2025-13", "2025-00", "2025--09", "-2025-09", "2025-+9"} {
		_, err := domain.ParseMonth(raw)
		require.Error(t, err, raw)

		v, ok := domain.IsValidation(err)
		require.True(t, ok, raw)
		assert.Equal(t, "month", v.Field)
		assert.Equal(t, raw, v.Value)
	}
}

func TestNormalizeComponent(t *testing.T) {
	assert.Equal(t, "Resistor", domain.NormalizeComponent(""))
	assert.Equal(t, "Resistor", domain.NormalizeComponent("   "))
	assert.Equal(t, "Resistor", domain.NormalizeComponent("\t\n"))
	assert.Equal(t, " Diode ", domain.NormalizeComponent(" Diode "))
	assert.Equal(t, "Diode", domain.NormalizeComponent("Diode"))
}

func TestComponentTypes_MatchesPicker(t *testing.T) {
	assert.Equal(t, []string{"Resistor", "Capacitor", "IC", "Transistor", "Diode", "Connector", "Sensor"}, domain.ComponentTypes())
}

func TestComponentTypes_ReturnsCopy(t *testing.T) {
	types := domain.ComponentTypes()
	require.NotEmpty(t, types)
	types[0] = "changed"
	assert.Equal(t, "Resistor", domain.ComponentTypes()[0])
}
