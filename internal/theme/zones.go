package theme

import (
	"maps"
	"strings"

	"github.com/alexisbeaulieu97/skinkit/internal/coerce"
	"github.com/alexisbeaulieu97/skinkit/internal/condition"
)

// ProgressStyle selects the progress slider variant.
type ProgressStyle string

const (
	ProgressIOS     ProgressStyle = "ios"
	ProgressCapsule ProgressStyle = "capsule"
)

// ThreeColumnSlot arranges items into left, center and right columns.
type ThreeColumnSlot struct {
	Left   []Item `json:"left"`
	Center []Item `json:"center"`
	Right  []Item `json:"right"`
}

// IsCompletelyEmpty reports whether all three columns are empty.
func (s ThreeColumnSlot) IsCompletelyEmpty() bool {
	return len(s.Left) == 0 && len(s.Center) == 0 && len(s.Right) == 0
}

// Contains reports whether any column holds an item with id.
func (s ThreeColumnSlot) Contains(id string) bool {
	for _, col := range [][]Item{s.Left, s.Center, s.Right} {
		for _, item := range col {
			if item.ID == id {
				return true
			}
		}
	}
	return false
}

// BottomSlot is the bottom zone arrangement: a main row, a row above it
// inside the panel, and a row outside the panel.
type BottomSlot struct {
	Main    ThreeColumnSlot `json:"main"`
	Outside ThreeColumnSlot `json:"outside"`
	TopRow  ThreeColumnSlot `json:"topRow"`
}

// IsCompletelyEmpty reports whether every section is empty.
func (s BottomSlot) IsCompletelyEmpty() bool {
	return s.Main.IsCompletelyEmpty() && s.Outside.IsCompletelyEmpty() && s.TopRow.IsCompletelyEmpty()
}

// Contains reports whether any section holds an item with id.
func (s BottomSlot) Contains(id string) bool {
	return s.Main.Contains(id) || s.Outside.Contains(id) || s.TopRow.Contains(id)
}

// ZoneVibes are the layout and visibility parameters of a zone.
type ZoneVibes struct {
	Padding                   coerce.EdgeInsets `json:"padding"`
	ShowWhenLocked            bool              `json:"showWhenLocked"`
	ShowWhenUnlocked          bool              `json:"showWhenUnlocked"`
	UseNormalLayoutWhenLocked bool              `json:"useNormalLayoutWhenLocked"`
	ItemSpacing               float64           `json:"itemSpacing"`
	GroupSpacing              float64           `json:"groupSpacing"`
	TopRowBottomSpacing       float64           `json:"topRowBottomSpacing"`
	ProgressBottomSpacing     float64           `json:"progressBottomSpacing"`
	VisibleWhen               string            `json:"visibleWhen,omitempty"`
	PanelOverride             map[string]any    `json:"panelOverride,omitempty"`
	AbsoluteCenter            bool              `json:"absoluteCenter"`
}

// Shown reports whether the lock state allows the zone and its visibleWhen holds.
func (v ZoneVibes) Shown(state condition.State) bool {
	locked := state != nil && state.Locked()
	if (!v.ShowWhenUnlocked && !locked) || (!v.ShowWhenLocked && locked) {
		return false
	}
	return condition.Evaluate(v.VisibleWhen, state)
}

// TopZone is the top overlay region.
type TopZone struct {
	Normal ThreeColumnSlot  `json:"normal"`
	Locked *ThreeColumnSlot `json:"locked"`
	Vibes  ZoneVibes        `json:"vibes"`
}

// MiddleZone is the center overlay region. An empty LockedItems means no
// locked variant, whether it was absent or an empty list.
type MiddleZone struct {
	NormalItems []Item    `json:"normalItems"`
	LockedItems []Item    `json:"lockedItems"`
	Vibes       ZoneVibes `json:"vibes"`
}

// BottomZone is the bottom overlay region.
type BottomZone struct {
	Normal          BottomSlot        `json:"normal"`
	Locked          *BottomSlot       `json:"locked"`
	Vibes           ZoneVibes         `json:"vibes"`
	ShowProgress    bool              `json:"showProgress"`
	ProgressStyle   ProgressStyle     `json:"progressStyle"`
	ProgressPadding coerce.EdgeInsets `json:"progressPadding"`
	OutsidePadding  coerce.EdgeInsets `json:"outsidePadding"`
}

func defaultTopVibes() ZoneVibes {
	return ZoneVibes{
		Padding:               coerce.Symmetric(16, 12),
		ShowWhenLocked:        true,
		ShowWhenUnlocked:      true,
		ItemSpacing:           8,
		GroupSpacing:          16,
		TopRowBottomSpacing:   8,
		ProgressBottomSpacing: 8,
	}
}

func defaultMiddleVibes() ZoneVibes {
	return ZoneVibes{
		ShowWhenLocked:        true,
		ShowWhenUnlocked:      true,
		ItemSpacing:           32,
		GroupSpacing:          32,
		TopRowBottomSpacing:   8,
		ProgressBottomSpacing: 8,
	}
}

func defaultBottomVibes() ZoneVibes {
	return ZoneVibes{
		Padding:               coerce.Symmetric(16, 12),
		ShowWhenLocked:        true,
		ShowWhenUnlocked:      true,
		ItemSpacing:           8,
		GroupSpacing:          16,
		TopRowBottomSpacing:   8,
		ProgressBottomSpacing: 10,
	}
}

// DefaultTopZone returns an empty top zone.
func DefaultTopZone() TopZone { return TopZone{Vibes: defaultTopVibes()} }

// DefaultMiddleZone returns an empty middle zone.
func DefaultMiddleZone() MiddleZone { return MiddleZone{Vibes: defaultMiddleVibes()} }

// DefaultBottomZone returns an empty bottom zone with the implicit progress slider on.
func DefaultBottomZone() BottomZone {
	return BottomZone{
		Vibes:           defaultBottomVibes(),
		ShowProgress:    true,
		ProgressStyle:   ProgressIOS,
		ProgressPadding: coerce.Symmetric(4, 0),
		OutsidePadding:  coerce.Symmetric(4, 8),
	}
}

// variants splits a zone object into its normal and locked parts. A zone is
// either a flat normal-state object or a {normal, locked} wrapper. Layers are
// the objects vibes are read from, lowest precedence first.
type variants struct {
	normal    any
	locked    any
	hasLocked bool
	wrapped   bool
	layers    []map[string]any
}

func splitVariants(raw any) variants {
	m := coerce.AsMap(raw)
	if m == nil {
		return variants{normal: raw}
	}

	var v variants
	if coerce.Has(m, "normal") || coerce.Has(m, "locked") {
		v.wrapped = true
		v.normal = m["normal"]
		v.locked = m["locked"]
		v.hasLocked = coerce.Has(m, "locked")
		if nm := coerce.AsMap(v.normal); nm != nil {
			v.layers = append(v.layers, nm)
		}
	} else {
		v.normal = m
	}
	v.layers = append(v.layers, m)
	if vibes := coerce.AsMap(m["vibes"]); vibes != nil {
		v.layers = append(v.layers, vibes)
	}
	return v
}

func (v variants) normalScope(sc scope) scope {
	if v.wrapped {
		return sc.child("normal")
	}
	return sc
}

func parseTopZone(raw any, sc scope) TopZone {
	zone := DefaultTopZone()
	v := splitVariants(raw)
	zone.Normal = parseThreeColumn(v.normal, v.normalScope(sc))
	if v.hasLocked {
		slot := parseThreeColumn(v.locked, sc.child("locked"))
		zone.Locked = &slot
	}
	zone.Vibes = readVibes(zone.Vibes, sc, v.layers...)
	return zone
}

func parseMiddleZone(raw any, sc scope) MiddleZone {
	zone := DefaultMiddleZone()
	v := splitVariants(raw)
	zone.NormalItems = parseItemGroup(v.normal, v.normalScope(sc))
	if v.hasLocked {
		zone.LockedItems = parseItemGroup(v.locked, sc.child("locked"))
	}
	zone.Vibes = readVibes(zone.Vibes, sc, v.layers...)
	return zone
}

func parseBottomZone(raw any, sc scope) BottomZone {
	zone := DefaultBottomZone()
	v := splitVariants(raw)
	zone.Normal = parseBottomSlot(v.normal, v.normalScope(sc))
	if v.hasLocked {
		slot := parseBottomSlot(v.locked, sc.child("locked"))
		zone.Locked = &slot
	}
	zone.Vibes = readVibes(zone.Vibes, sc, v.layers...)

	for _, layer := range v.layers {
		if b, ok := coerce.BoolField(layer, "showProgress"); ok {
			zone.ShowProgress = b
		}
		if s, ok := coerce.StringField(layer, "progressStyle"); ok {
			switch style := ProgressStyle(strings.ToLower(strings.TrimSpace(s))); style {
			case ProgressIOS, ProgressCapsule:
				zone.ProgressStyle = style
			default:
				sc.warnf("progressStyle: unsupported value %q, using %q", s, zone.ProgressStyle)
			}
		}
		if coerce.Has(layer, "progressPadding") {
			zone.ProgressPadding = coerce.ReadEdgeInsets(layer["progressPadding"], zone.ProgressPadding)
		}
		if coerce.Has(layer, "outsidePadding") {
			zone.OutsidePadding = coerce.ReadEdgeInsets(layer["outsidePadding"], zone.OutsidePadding)
		}
	}
	return zone
}

func parseBottomSlot(raw any, sc scope) BottomSlot {
	m := coerce.AsMap(raw)
	slot := BottomSlot{Main: parseThreeColumn(m, sc)}
	if m == nil {
		return slot
	}
	slot.Outside = parseThreeColumn(m["outside"], sc.child("outside"))
	topRow := m["topRow"]
	if topRow == nil {
		topRow = m["top_row"]
	}
	slot.TopRow = parseThreeColumn(topRow, sc.child("topRow"))
	return slot
}

func parseThreeColumn(raw any, sc scope) ThreeColumnSlot {
	m := coerce.AsMap(raw)
	if m == nil {
		return ThreeColumnSlot{}
	}
	return ThreeColumnSlot{
		Left:   parseItems(m["left"], sc.child("left")),
		Center: parseItems(m["center"], sc.child("center")),
		Right:  parseItems(m["right"], sc.child("right")),
	}
}

// parseItemGroup reads a middle-zone item list: a bare array, {items: [...]},
// or a three-column object flattened left to right.
func parseItemGroup(raw any, sc scope) []Item {
	if coerce.AsList(raw) != nil {
		return parseItems(raw, sc)
	}
	m := coerce.AsMap(raw)
	if m == nil {
		return nil
	}
	if coerce.Has(m, "items") {
		return parseItems(m["items"], sc.child("items"))
	}
	slot := parseThreeColumn(m, sc)
	var items []Item
	items = append(items, slot.Left...)
	items = append(items, slot.Center...)
	items = append(items, slot.Right...)
	return items
}

func parseItems(raw any, sc scope) []Item {
	if raw == nil {
		return nil
	}
	list := coerce.AsList(raw)
	if list == nil {
		list = []any{raw}
	}

	var items []Item
	for i, entry := range list {
		entryScope := sc.index(i)
		item, err := ParseItem(entry)
		if err != nil {
			entryScope.warnf("item dropped: %v", err)
			continue
		}
		entryScope.checkCondition("visibleWhen", item.VisibleWhen)
		entryScope.checkCondition("enabledWhen", item.EnabledWhen)
		entryScope.checkColors("style", item.Style)
		items = append(items, item)
	}
	return items
}

func readVibes(base ZoneVibes, sc scope, layers ...map[string]any) ZoneVibes {
	out := base
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if coerce.Has(layer, "padding") {
			out.Padding = coerce.ReadEdgeInsets(layer["padding"], out.Padding)
		}
		readBool(layer, "showWhenLocked", &out.ShowWhenLocked)
		readBool(layer, "showWhenUnlocked", &out.ShowWhenUnlocked)
		readBool(layer, "useNormalLayoutWhenLocked", &out.UseNormalLayoutWhenLocked)
		readBool(layer, "absoluteCenter", &out.AbsoluteCenter)
		readNumber(layer, "itemSpacing", &out.ItemSpacing)
		readNumber(layer, "groupSpacing", &out.GroupSpacing)
		readNumber(layer, "topRowBottomSpacing", &out.TopRowBottomSpacing)
		readNumber(layer, "progressBottomSpacing", &out.ProgressBottomSpacing)
		if s, ok := coerce.StringField(layer, "visibleWhen"); ok {
			out.VisibleWhen = s
		}
		if panel := coerce.AsMap(layer["panelOverride"]); len(panel) > 0 {
			merged := make(map[string]any, len(out.PanelOverride)+len(panel))
			maps.Copy(merged, out.PanelOverride)
			maps.Copy(merged, panel)
			out.PanelOverride = merged
		}
	}
	sc.checkCondition("visibleWhen", out.VisibleWhen)
	sc.checkColors("panelOverride", out.PanelOverride)
	return out
}

func readBool(m map[string]any, key string, dst *bool) {
	if v, ok := coerce.BoolField(m, key); ok {
		*dst = v
	}
}

func readNumber(m map[string]any, key string, dst *float64) {
	if v, ok := coerce.DoubleField(m, key); ok {
		*dst = v
	}
}
