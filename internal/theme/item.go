package theme

import (
	"errors"
	"strings"

	"github.com/alexisbeaulieu97/skinkit/internal/coerce"
	"github.com/alexisbeaulieu97/skinkit/internal/condition"
)

// Well-known item ids.
const (
	IDTitle          = "title"
	IDEpisodeBadge   = "episode_badge"
	IDSeriesBadge    = "series_badge"
	IDQualityBadge   = "quality_badge"
	IDLabelStack     = "label_stack"
	IDWatchingLabel  = "watching_label"
	IDProgressSlider = "progress_slider"
	IDSpacer         = "spacer"
	IDText           = "text"
	IDPlayPause      = "play_pause"
)

// ItemKind classifies an item by its id.
type ItemKind int

const (
	KindButton ItemKind = iota
	KindTitle
	KindBadge
	KindStack
	KindProgress
	KindSpacer
	KindText
)

func (k ItemKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindBadge:
		return "badge"
	case KindStack:
		return "stack"
	case KindProgress:
		return "progress"
	case KindSpacer:
		return "spacer"
	case KindText:
		return "text"
	default:
		return "button"
	}
}

// MarshalText encodes the kind by name.
func (k ItemKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// KindOf returns the kind for an item id.
func KindOf(id string) ItemKind {
	switch id {
	case IDTitle:
		return KindTitle
	case IDEpisodeBadge, IDSeriesBadge, IDQualityBadge:
		return KindBadge
	case IDLabelStack, IDWatchingLabel:
		return KindStack
	case IDProgressSlider:
		return KindProgress
	case IDSpacer:
		return KindSpacer
	case IDText:
		return KindText
	default:
		return KindButton
	}
}

var (
	errItemMissingID   = errors.New(`missing required field "id"`)
	errItemUnsupported = errors.New("entry must be a string id or an object with an id")
)

// Item is a single entry of a zone column. Data holds the raw object fields
// for item-specific renderers; read them through the typed accessors.
type Item struct {
	ID          string         `json:"id"`
	Data        map[string]any `json:"data"`
	VisibleWhen string         `json:"visibleWhen,omitempty"`
	EnabledWhen string         `json:"enabledWhen,omitempty"`
	Style       map[string]any `json:"style,omitempty"`
}

// NewItem returns an item with only an id.
func NewItem(id string) Item {
	return Item{ID: id, Data: map[string]any{}}
}

// ParseItem builds an item from a bare string id or an object carrying "id".
func ParseItem(raw any) (Item, error) {
	switch v := raw.(type) {
	case string:
		id := strings.TrimSpace(v)
		if id == "" {
			return Item{}, errItemMissingID
		}
		return NewItem(id), nil
	case map[string]any:
		id, _ := coerce.StringField(v, "id")
		id = strings.TrimSpace(id)
		if id == "" {
			return Item{}, errItemMissingID
		}
		item := Item{
			ID:          id,
			Data:        v,
			VisibleWhen: coerce.ReadString(v["visibleWhen"], ""),
			EnabledWhen: coerce.ReadString(v["enabledWhen"], ""),
			Style:       coerce.AsMap(v["style"]),
		}
		return item, nil
	default:
		return Item{}, errItemUnsupported
	}
}

// Kind returns the item's kind.
func (i Item) Kind() ItemKind { return KindOf(i.ID) }

// Visible evaluates visibleWhen against state.
func (i Item) Visible(state condition.State) bool {
	return condition.Evaluate(i.VisibleWhen, state)
}

// Enabled evaluates enabledWhen against state.
func (i Item) Enabled(state condition.State) bool {
	return condition.Evaluate(i.EnabledWhen, state)
}

// String returns the string field key or fallback.
func (i Item) String(key, fallback string) string {
	return coerce.ReadString(i.Data[key], fallback)
}

// Int returns the integer field key or fallback.
func (i Item) Int(key string, fallback int) int {
	return coerce.ReadInt(i.Data[key], fallback)
}

// Double returns the numeric field key or fallback.
func (i Item) Double(key string, fallback float64) float64 {
	return coerce.ReadDouble(i.Data[key], fallback)
}

// Bool returns the boolean field key or fallback.
func (i Item) Bool(key string, fallback bool) bool {
	return coerce.ReadBool(i.Data[key], fallback)
}

// Has reports whether the raw object carries key.
func (i Item) Has(key string) bool { return coerce.Has(i.Data, key) }

// Strings returns key as a list of strings. A single string becomes a one-element list.
func (i Item) Strings(key string) []string {
	if s, ok := i.Data[key].(string); ok {
		return []string{s}
	}
	var out []string
	for _, v := range coerce.AsList(i.Data[key]) {
		if s, ok := coerce.StringValue(v); ok {
			out = append(out, s)
		}
	}
	return out
}

// Primary reports whether the item asks for the primary button style.
func (i Item) Primary() bool {
	return i.Bool("primary", i.ID == IDPlayPause)
}

// Flex returns the flex factor for spacer-like items.
func (i Item) Flex() int {
	return i.Int("flex", 1)
}
