package color

import "strings"

// DynamicTable maps dynamic color names to base colors. Names are matched
// ignoring case and underscores, so "onPrimary" and "on_primary" are the same key.
type DynamicTable struct {
	entries map[string]string
}

// NewDynamicTable builds a table from name/color pairs.
func NewDynamicTable(colors map[string]string) DynamicTable {
	entries := make(map[string]string, len(colors))
	for name, value := range colors {
		entries[dynamicKey(name)] = value
	}
	return DynamicTable{entries: entries}
}

// Lookup returns the base color registered for name.
func (t DynamicTable) Lookup(name string) (string, bool) {
	value, ok := t.entries[dynamicKey(name)]
	return value, ok
}

// Len returns the number of registered colors.
func (t DynamicTable) Len() int { return len(t.entries) }

func dynamicKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
}

// DefaultDynamicTable returns a fresh copy of the built-in dark overlay scheme.
func DefaultDynamicTable() DynamicTable {
	return NewDynamicTable(map[string]string{
		"primary":              "#D0BCFF",
		"onPrimary":            "#381E72",
		"primaryContainer":     "#4F378B",
		"onPrimaryContainer":   "#EADDFF",
		"secondary":            "#CCC2DC",
		"onSecondary":          "#332D41",
		"secondaryContainer":   "#4A4458",
		"onSecondaryContainer": "#E8DEF8",
		"tertiary":             "#EFB8C8",
		"onTertiary":           "#492532",
		"error":                "#F2B8B5",
		"onError":              "#601410",
		"background":           "#141218",
		"onBackground":         "#E6E0E9",
		"surface":              "#141218",
		"onSurface":            "#E6E0E9",
		"surfaceVariant":       "#49454F",
		"onSurfaceVariant":     "#CAC4D0",
		"surfaceContainer":     "#211F26",
		"surfaceContainerHigh": "#2B2930",
		"inverseSurface":       "#E6E0E9",
		"outline":              "#938F99",
		"outlineVariant":       "#49454F",
		"shadow":               "#000000",
		"scrim":                "#000000",
	})
}
