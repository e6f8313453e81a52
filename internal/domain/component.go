package domain

import "strings"

const (
	DefaultComponent = "Resistor"
	DefaultMonth     = "2025-09"
)

var componentTypes = []string{
	"Resistor",
	"Capacitor",
	"IC",
	"Transistor",
	"Diode",
	"Connector",
	"Sensor",
}

// ComponentTypes returns the catalogue offered by the dashboard picker.
// Any other component name is still accepted by the generator.
func ComponentTypes() []string {
	return append([]string(nil), componentTypes...)
}

// NormalizeComponent falls back to DefaultComponent for a blank name.
// Any other name is returned untouched, surrounding whitespace included,
// since every character takes part in the seed.
func NormalizeComponent(component string) string {
	if strings.TrimSpace(component) == "" {
		return DefaultComponent
	}
	return component
}
