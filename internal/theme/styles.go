package theme

import "github.com/alexisbeaulieu97/skinkit/internal/coerce"

// PanelStyle describes the container drawn behind a zone.
type PanelStyle struct {
	Enabled        bool              `json:"enabled"`
	ShowBackground bool              `json:"showBackground"`
	ShowBorder     bool              `json:"showBorder"`
	Radius         float64           `json:"radius"`
	Blur           float64           `json:"blur"`
	Color          string            `json:"color"`
	BorderColor    string            `json:"borderColor"`
	BorderWidth    float64           `json:"borderWidth"`
	Padding        coerce.EdgeInsets `json:"padding"`
	ShadowColor    string            `json:"shadowColor"`
	ShadowBlur     float64           `json:"shadowBlur"`
	ShadowOffsetY  float64           `json:"shadowOffsetY"`
}

// ButtonStyle describes an icon button.
type ButtonStyle struct {
	Size              float64 `json:"size"`
	IconSize          float64 `json:"iconSize"`
	Radius            float64 `json:"radius"`
	Blur              float64 `json:"blur"`
	Color             string  `json:"color"`
	BorderColor       string  `json:"borderColor"`
	BorderWidth       float64 `json:"borderWidth"`
	IconColor         string  `json:"iconColor"`
	DisabledIconColor string  `json:"disabledIconColor"`
}

// ChipStyle describes badges and other pill-shaped labels.
type ChipStyle struct {
	Radius          float64           `json:"radius"`
	Color           string            `json:"color"`
	BackgroundColor string            `json:"backgroundColor"`
	BorderColor     string            `json:"borderColor"`
	BorderWidth     float64           `json:"borderWidth"`
	TextColor       string            `json:"textColor"`
	FontSize        float64           `json:"fontSize"`
	FontWeight      int               `json:"fontWeight"`
	LetterSpacing   float64           `json:"letterSpacing"`
	Padding         coerce.EdgeInsets `json:"padding"`
}

// TextStyle describes plain text items. Height is a line-height multiplier.
type TextStyle struct {
	TextColor       string  `json:"textColor"`
	BackgroundColor string  `json:"backgroundColor"`
	FontSize        float64 `json:"fontSize"`
	FontWeight      int     `json:"fontWeight"`
	LetterSpacing   float64 `json:"letterSpacing"`
	Height          float64 `json:"height"`
}

// Styles holds the five global style slots of a theme.
type Styles struct {
	Panel         PanelStyle  `json:"panel"`
	Button        ButtonStyle `json:"button"`
	PrimaryButton ButtonStyle `json:"primaryButton"`
	Chip          ChipStyle   `json:"chip"`
	Text          TextStyle   `json:"text"`
}

// DefaultPanelStyle returns the panel used when a theme does not define one.
func DefaultPanelStyle() PanelStyle {
	return PanelStyle{
		Enabled:        true,
		ShowBackground: true,
		ShowBorder:     true,
		Radius:         20,
		Blur:           18,
		Color:          "rgba(0,0,0,0.450)",
		BorderColor:    "rgba(255,255,255,0.120)",
		BorderWidth:    1,
		Padding:        coerce.Symmetric(12, 10),
		ShadowColor:    "rgba(0,0,0,0.250)",
		ShadowBlur:     24,
		ShadowOffsetY:  8,
	}
}

// DefaultButtonStyle returns the regular button style.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		Size:              44,
		IconSize:          22,
		Radius:            22,
		Blur:              12,
		Color:             "rgba(255,255,255,0.100)",
		BorderColor:       "rgba(255,255,255,0.120)",
		BorderWidth:       1,
		IconColor:         "rgba(255,255,255,1.000)",
		DisabledIconColor: "rgba(255,255,255,0.350)",
	}
}

// DefaultPrimaryButtonStyle returns the emphasized button style used for play/pause.
func DefaultPrimaryButtonStyle() ButtonStyle {
	return ButtonStyle{
		Size:              60,
		IconSize:          32,
		Radius:            30,
		Blur:              16,
		Color:             "rgba(255,255,255,0.180)",
		BorderColor:       "rgba(255,255,255,0.200)",
		BorderWidth:       1,
		IconColor:         "rgba(255,255,255,1.000)",
		DisabledIconColor: "rgba(255,255,255,0.350)",
	}
}

// DefaultChipStyle returns the badge style.
func DefaultChipStyle() ChipStyle {
	return ChipStyle{
		Radius:          8,
		Color:           "rgba(208,188,255,1.000)",
		BackgroundColor: "rgba(255,255,255,0.120)",
		BorderColor:     "rgba(255,255,255,0.000)",
		BorderWidth:     0,
		TextColor:       "rgba(255,255,255,1.000)",
		FontSize:        11,
		FontWeight:      600,
		LetterSpacing:   0.2,
		Padding:         coerce.Symmetric(8, 3),
	}
}

// DefaultTextStyle returns the text style.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		TextColor:       "rgba(255,255,255,1.000)",
		BackgroundColor: "rgba(0,0,0,0.000)",
		FontSize:        14,
		FontWeight:      500,
		LetterSpacing:   0,
		Height:          1.2,
	}
}

// DefaultStyles returns all style slots at their defaults.
func DefaultStyles() Styles {
	return Styles{
		Panel:         DefaultPanelStyle(),
		Button:        DefaultButtonStyle(),
		PrimaryButton: DefaultPrimaryButtonStyle(),
		Chip:          DefaultChipStyle(),
		Text:          DefaultTextStyle(),
	}
}
