// Package theme parses player overlay theme documents into immutable
// ThemeDef values.
//
// Parsing is best-effort: a malformed theme in a collection is reported and
// skipped, and a malformed item is dropped from its list with a warning.
package theme

import (
	"strings"

	"github.com/alexisbeaulieu97/skinkit/internal/coerce"
	"github.com/alexisbeaulieu97/skinkit/internal/color"
)

// ThemeDef is a fully resolved theme.
type ThemeDef struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Palette color.Palette `json:"palette"`
	Styles  Styles        `json:"styles"`
	Top     TopZone       `json:"top"`
	Middle  MiddleZone    `json:"middle"`
	Bottom  BottomZone    `json:"bottom"`
}

// DefaultTheme returns a theme with every style and zone at its default.
func DefaultTheme(id string) ThemeDef {
	return ThemeDef{
		ID:      id,
		Name:    id,
		Palette: color.Palette{},
		Styles:  DefaultStyles(),
		Top:     DefaultTopZone(),
		Middle:  DefaultMiddleZone(),
		Bottom:  DefaultBottomZone(),
	}
}

func parseTheme(raw map[string]any, sc scope) (ThemeDef, error) {
	id, _ := coerce.StringField(raw, "id")
	id = strings.TrimSpace(id)
	if id == "" {
		return ThemeDef{}, errMissingThemeID
	}
	sc = sc.named(id)

	def := DefaultTheme(id)
	if name, ok := coerce.StringField(raw, "name"); ok && strings.TrimSpace(name) != "" {
		def.Name = name
	}
	def.Palette = parsePalette(raw["palette"])

	sc.cascade.Palette = def.Palette
	def.Styles = parseStyles(coerce.AsMap(raw["styles"]), sc.child("styles"))

	def.Top = parseTopZone(raw["top"], sc.child("top"))

	middle, middleKey := raw["middle"], "middle"
	if middle == nil {
		middle, middleKey = raw["center"], "center"
	}
	def.Middle = parseMiddleZone(middle, sc.child(middleKey))

	def.Bottom = parseBottomZone(raw["bottom"], sc.child("bottom"))
	return def, nil
}

func parsePalette(raw any) color.Palette {
	palette := color.Palette{}
	for key, value := range coerce.AsMap(raw) {
		if key == color.ReservedPaletteKey {
			continue
		}
		if s, ok := value.(string); ok {
			palette[key] = s
		}
	}
	return palette
}

func parseStyles(raw map[string]any, sc scope) Styles {
	styles := DefaultStyles()
	if raw == nil {
		return styles
	}
	styles.Panel = sc.child("panel").cascade.MashPanelStyle(styles.Panel, coerce.AsMap(raw["panel"]))
	styles.Button = sc.child("button").cascade.MashButtonStyle(styles.Button, coerce.AsMap(raw["button"]))
	styles.PrimaryButton = sc.child("primaryButton").cascade.MashButtonStyle(styles.PrimaryButton, coerce.AsMap(raw["primaryButton"]))
	styles.Chip = sc.child("chip").cascade.MashChipStyle(styles.Chip, coerce.AsMap(raw["chip"]))
	styles.Text = sc.child("text").cascade.MashTextStyle(styles.Text, coerce.AsMap(raw["text"]))
	return styles
}
