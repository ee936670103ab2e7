package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/skinkit/internal/coerce"
	"github.com/alexisbeaulieu97/skinkit/internal/color"
)

// Cascade merges raw style overrides over typed styles. Each field of the
// override replaces the base field only when present and coercible; color
// fields must also resolve.
type Cascade struct {
	Resolver *color.Resolver
	Palette  color.Palette

	// Warn, when set, receives a message for every override color that does not resolve.
	Warn func(msg string)
}

// Reduce applies each layer in order over base.
func Reduce[T any](base T, mash func(T, map[string]any) T, layers ...map[string]any) T {
	for _, layer := range layers {
		base = mash(base, layer)
	}
	return base
}

// MashPanelStyle merges override over base.
func (c Cascade) MashPanelStyle(base PanelStyle, override map[string]any) PanelStyle {
	if len(override) == 0 {
		return base
	}
	f := c.fields(override)
	out := base
	f.boolean("enabled", &out.Enabled)
	f.boolean("showBackground", &out.ShowBackground)
	f.boolean("showBorder", &out.ShowBorder)
	f.number("radius", &out.Radius)
	f.number("blur", &out.Blur)
	f.color("color", &out.Color)
	f.color("borderColor", &out.BorderColor)
	f.number("borderWidth", &out.BorderWidth)
	f.insets("padding", &out.Padding)
	f.color("shadowColor", &out.ShadowColor)
	f.number("shadowBlur", &out.ShadowBlur)
	f.number("shadowOffsetY", &out.ShadowOffsetY)
	return out
}

// MashButtonStyle merges override over base.
func (c Cascade) MashButtonStyle(base ButtonStyle, override map[string]any) ButtonStyle {
	if len(override) == 0 {
		return base
	}
	f := c.fields(override)
	out := base
	f.number("size", &out.Size)
	f.number("iconSize", &out.IconSize)
	f.number("radius", &out.Radius)
	f.number("blur", &out.Blur)
	f.color("color", &out.Color)
	f.color("borderColor", &out.BorderColor)
	f.number("borderWidth", &out.BorderWidth)
	f.color("iconColor", &out.IconColor)
	f.color("disabledIconColor", &out.DisabledIconColor)
	return out
}

// MashChipStyle merges override over base.
func (c Cascade) MashChipStyle(base ChipStyle, override map[string]any) ChipStyle {
	if len(override) == 0 {
		return base
	}
	f := c.fields(override)
	out := base
	f.number("radius", &out.Radius)
	f.color("color", &out.Color)
	f.color("backgroundColor", &out.BackgroundColor)
	f.color("borderColor", &out.BorderColor)
	f.number("borderWidth", &out.BorderWidth)
	f.color("textColor", &out.TextColor)
	f.number("fontSize", &out.FontSize)
	f.weight("fontWeight", &out.FontWeight)
	f.number("letterSpacing", &out.LetterSpacing)
	f.insets("padding", &out.Padding)
	return out
}

// MashTextStyle merges override over base.
func (c Cascade) MashTextStyle(base TextStyle, override map[string]any) TextStyle {
	if len(override) == 0 {
		return base
	}
	f := c.fields(override)
	out := base
	f.color("textColor", &out.TextColor)
	f.color("backgroundColor", &out.BackgroundColor)
	f.number("fontSize", &out.FontSize)
	f.weight("fontWeight", &out.FontWeight)
	f.number("letterSpacing", &out.LetterSpacing)
	f.number("height", &out.Height)
	return out
}

// CheckColors reports unresolvable values of color-named keys in m through Warn.
func (c Cascade) CheckColors(path string, m map[string]any) {
	if c.Warn == nil {
		return
	}
	for _, key := range sortedKeys(m) {
		if !strings.HasSuffix(strings.ToLower(key), "color") {
			continue
		}
		token, ok := coerce.StringField(m, key)
		if !ok {
			continue
		}
		if _, resolved := c.resolver().Lookup(token, c.Palette); !resolved {
			c.Warn(fmt.Sprintf("%s.%s: unresolved color %q", path, key, token))
		}
	}
}

func (c Cascade) resolver() *color.Resolver {
	if c.Resolver == nil {
		return color.DefaultResolver()
	}
	return c.Resolver
}

func (c Cascade) fields(m map[string]any) fieldSet {
	return fieldSet{m: m, cascade: c, resolver: c.resolver()}
}

type fieldSet struct {
	m        map[string]any
	cascade  Cascade
	resolver *color.Resolver
}

func (f fieldSet) number(key string, dst *float64) {
	if v, ok := coerce.DoubleField(f.m, key); ok {
		*dst = v
	}
}

func (f fieldSet) boolean(key string, dst *bool) {
	if v, ok := coerce.BoolField(f.m, key); ok {
		*dst = v
	}
}

func (f fieldSet) insets(key string, dst *coerce.EdgeInsets) {
	if coerce.Has(f.m, key) {
		*dst = coerce.ReadEdgeInsets(f.m[key], *dst)
	}
}

func (f fieldSet) color(key string, dst *string) {
	token, ok := coerce.StringField(f.m, key)
	if !ok {
		return
	}
	if resolved, ok := f.resolver.Lookup(token, f.cascade.Palette); ok {
		*dst = resolved
		return
	}
	if f.cascade.Warn != nil {
		f.cascade.Warn(fmt.Sprintf("%s: unresolved color %q", key, token))
	}
}

// weight accepts 100-900, "w600" and the names "normal"/"bold".
func (f fieldSet) weight(key string, dst *int) {
	if v, ok := coerce.IntField(f.m, key); ok {
		*dst = v
		return
	}
	s, ok := coerce.StringField(f.m, key)
	if !ok {
		return
	}
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "normal", "regular":
		*dst = 400
	case "medium":
		*dst = 500
	case "semibold":
		*dst = 600
	case "bold":
		*dst = 700
	default:
		if n, err := strconv.Atoi(strings.TrimPrefix(s, "w")); err == nil {
			*dst = n
		}
	}
}
