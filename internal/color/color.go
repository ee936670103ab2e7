// Package color resolves theme color tokens into normalized rgba strings.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ReservedPaletteKey is a documentation entry authors may keep in a palette.
const ReservedPaletteKey = "note_by_dev"

// Palette maps token names to color strings. Values are used as-is and are
// never resolved through further palette references.
type Palette map[string]string

var (
	rgbaPattern    = regexp.MustCompile(`(?i)^rgba?\(\s*([0-9.]+)\s*,\s*([0-9.]+)\s*,\s*([0-9.]+)\s*(?:,\s*([0-9.]+)\s*)?\)$`)
	hexDigitsRegex = regexp.MustCompile(`^[0-9a-fA-F]+$`)
)

// Resolver turns color tokens into rgba strings using a dynamic color table.
type Resolver struct {
	Dynamic DynamicTable
}

// NewResolver returns a Resolver backed by the given table.
func NewResolver(table DynamicTable) *Resolver {
	return &Resolver{Dynamic: table}
}

// DefaultResolver returns a Resolver backed by DefaultDynamicTable.
func DefaultResolver() *Resolver {
	return NewResolver(DefaultDynamicTable())
}

// Resolve returns the rgba form of token, or fallback when it cannot be resolved.
func (r *Resolver) Resolve(token, fallback string, palette Palette) string {
	if resolved, ok := r.Lookup(token, palette); ok {
		return resolved
	}
	return fallback
}

// Lookup resolves token and reports whether it matched any supported form.
func (r *Resolver) Lookup(token string, palette Palette) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	if name, ok := strings.CutPrefix(token, "@"); ok {
		value, found := palette[strings.TrimSpace(name)]
		if !found {
			return "", false
		}
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "@") {
			return "", false
		}
		return r.literal(value)
	}

	return r.literal(token)
}

func (r *Resolver) literal(token string) (string, bool) {
	if m := rgbaPattern.FindStringSubmatch(token); m != nil {
		return normalizeRGBA(m)
	}

	lower := strings.ToLower(token)
	if args, ok := callArgs(lower, token, "dynamic"); ok {
		return r.dynamic(args)
	}
	if args, ok := callArgs(lower, token, "hex"); ok {
		return HexToRGBA(args, -1)
	}
	if strings.HasPrefix(token, "#") {
		return HexToRGBA(token, -1)
	}

	switch lower {
	case "white":
		return FormatRGBA(255, 255, 255, 1), true
	case "black":
		return FormatRGBA(0, 0, 0, 1), true
	case "transparent":
		return FormatRGBA(0, 0, 0, 0), true
	}
	return "", false
}

func (r *Resolver) dynamic(args string) (string, bool) {
	if r == nil {
		return "", false
	}
	name, alphaRaw, hasAlpha := strings.Cut(args, ",")
	base, ok := r.Dynamic.Lookup(name)
	if !ok {
		return "", false
	}
	base = strings.TrimSpace(base)

	alpha := -1.0
	if hasAlpha {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(alphaRaw), 64); err == nil && !math.IsNaN(parsed) {
			alpha = parsed
		}
	}

	if strings.HasPrefix(base, "#") {
		if out, ok := HexToRGBA(base, alpha); ok {
			return out, true
		}
	}
	return base, true
}

// callArgs returns the argument text of name(...) matched case-insensitively.
func callArgs(lower, original, name string) (string, bool) {
	if !strings.HasPrefix(lower, name+"(") || !strings.HasSuffix(lower, ")") {
		return "", false
	}
	return strings.TrimSpace(original[len(name)+1 : len(original)-1]), true
}

// HexToRGBA converts #RGB, #RGBA, #RRGGBB or #RRGGBBAA (the # is optional) into
// an rgba string. A non-negative alpha replaces the encoded alpha.
func HexToRGBA(hex string, alpha float64) (string, bool) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if !hexDigitsRegex.MatchString(digits) {
		return "", false
	}

	switch len(digits) {
	case 3, 4:
		var expanded strings.Builder
		for _, ch := range digits {
			expanded.WriteRune(ch)
			expanded.WriteRune(ch)
		}
		digits = expanded.String()
	case 6, 8:
	default:
		return "", false
	}

	c, err := colorful.Hex("#" + digits[:6])
	if err != nil {
		return "", false
	}
	red, green, blue := c.RGB255()

	a := 1.0
	if len(digits) == 8 {
		encoded, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return "", false
		}
		a = float64(encoded) / 255
	}
	if alpha >= 0 {
		a = alpha
	}
	return FormatRGBA(int(red), int(green), int(blue), a), true
}

// FormatRGBA renders channels in the canonical rgba(r,g,b,a.aaa) form.
func FormatRGBA(red, green, blue int, alpha float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", clampChannel(red), clampChannel(green), clampChannel(blue), math.Max(0, math.Min(1, alpha)))
}

// ToHex converts a resolved rgba string into #rrggbb, dropping alpha.
func ToHex(rgba string) (string, bool) {
	m := rgbaPattern.FindStringSubmatch(strings.TrimSpace(rgba))
	if m == nil {
		return "", false
	}
	channels := make([]float64, 3)
	for i := range channels {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return "", false
		}
		channels[i] = float64(clampChannel(int(math.Round(v)))) / 255
	}
	return colorful.Color{R: channels[0], G: channels[1], B: channels[2]}.Hex(), true
}

// Alpha returns the alpha channel of a resolved rgba string.
func Alpha(rgba string) (float64, bool) {
	m := rgbaPattern.FindStringSubmatch(strings.TrimSpace(rgba))
	if m == nil {
		return 0, false
	}
	if m[4] == "" {
		return 1, true
	}
	v, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return 0, false
	}
	return math.Max(0, math.Min(1, v)), true
}

func normalizeRGBA(m []string) (string, bool) {
	channels := make([]int, 3)
	for i := range channels {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return "", false
		}
		channels[i] = int(math.Round(v))
	}
	alpha := 1.0
	if m[4] != "" {
		v, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return "", false
		}
		alpha = v
	}
	return FormatRGBA(channels[0], channels[1], channels[2], alpha), true
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
