package layout

import (
	"maps"

	"github.com/alexisbeaulieu97/skinkit/internal/color"
	"github.com/alexisbeaulieu97/skinkit/internal/snapshot"
	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

// Composer builds Screens. It holds no per-render state and is safe for
// concurrent use.
type Composer struct {
	resolver  *color.Resolver
	overrides map[string]map[string]any
}

// Option configures a Composer.
type Option func(*Composer)

// WithResolver sets the resolver used for render-time style overrides.
func WithResolver(r *color.Resolver) Option {
	return func(c *Composer) {
		c.resolver = r
	}
}

// WithStyleOverride adds a render-time style layer for items with id. It is
// applied over the item's own style.
func WithStyleOverride(id string, style map[string]any) Option {
	return func(c *Composer) {
		c.overrides[id] = maps.Clone(style)
	}
}

// NewComposer returns a Composer configured by opts.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{overrides: map[string]map[string]any{}}
	for _, opt := range opts {
		opt(c)
	}
	if c.resolver == nil {
		c.resolver = color.DefaultResolver()
	}
	return c
}

// Compose lays out def for snap with a default Composer.
func Compose(def theme.ThemeDef, snap snapshot.Snapshot) Screen {
	return NewComposer().Compose(def, snap)
}

// Compose lays out def for snap.
func (c *Composer) Compose(def theme.ThemeDef, snap snapshot.Snapshot) Screen {
	f := frame{
		composer: c,
		def:      def,
		snap:     snap,
		cascade:  theme.Cascade{Resolver: c.resolver, Palette: def.Palette},
	}
	return Screen{
		ThemeID: def.ID,
		Top:     f.top(),
		Middle:  f.middle(),
		Bottom:  f.bottom(),
	}
}

// frame carries the inputs of a single Compose call.
type frame struct {
	composer *Composer
	def      theme.ThemeDef
	snap     snapshot.Snapshot
	cascade  theme.Cascade
}

type emptiable interface {
	IsCompletelyEmpty() bool
}

// selectSlot picks the slot for the current lock state. The second result is
// false when nothing should render.
func selectSlot[T emptiable](normal T, locked *T, vibes theme.ZoneVibes, isLocked bool) (T, bool) {
	if !isLocked {
		return normal, true
	}
	if locked != nil && !(*locked).IsCompletelyEmpty() {
		return *locked, true
	}
	if vibes.UseNormalLayoutWhenLocked {
		return normal, true
	}
	var zero T
	return zero, false
}

func (f frame) top() *Node {
	zone := f.def.Top
	if !zone.Vibes.Shown(f.snap) {
		return nil
	}
	slot, ok := selectSlot(zone.Normal, zone.Locked, zone.Vibes, f.snap.IsLocked)
	if !ok {
		return nil
	}

	row, ok := f.threeColumn(f.visibleSlot(slot), zone.Vibes, true, "main")
	if !ok {
		return nil
	}
	return f.zoneNode("top", zone.Vibes, f.panel(row, zone.Vibes))
}

func (f frame) middle() *Node {
	zone := f.def.Middle
	if !zone.Vibes.Shown(f.snap) {
		return nil
	}

	items := zone.NormalItems
	if f.snap.IsLocked {
		switch {
		case len(zone.LockedItems) > 0:
			items = zone.LockedItems
		case zone.Vibes.UseNormalLayoutWhenLocked:
		default:
			return nil
		}
	}

	row, ok := f.row(f.visible(items), zone.Vibes.ItemSpacing, "main")
	if !ok {
		return nil
	}
	content := row
	if len(zone.Vibes.PanelOverride) > 0 {
		content = f.panel(row, zone.Vibes)
	}
	return f.zoneNode("middle", zone.Vibes, content)
}

func (f frame) bottom() *Node {
	zone := f.def.Bottom
	vibes := zone.Vibes
	if !vibes.Shown(f.snap) {
		return nil
	}
	slot, ok := selectSlot(zone.Normal, zone.Locked, vibes, f.snap.IsLocked)
	if !ok {
		return nil
	}
	manualProgress := slot.Contains(theme.IDProgressSlider)

	var children []Node
	if outside, ok := f.threeColumn(f.visibleSlot(slot.Outside), vibes, false, "outside"); ok {
		outside.Padding = zone.OutsidePadding
		children = append(children, outside)
	}

	type section struct {
		node    Node
		spacing float64
	}
	var sections []section
	if topRow, ok := f.threeColumn(f.visibleSlot(slot.TopRow), vibes, false, "topRow"); ok {
		sections = append(sections, section{topRow, vibes.TopRowBottomSpacing})
	}
	if zone.ShowProgress && !manualProgress {
		progress := f.progress(theme.NewItem(theme.IDProgressSlider), true)
		progress.Padding = zone.ProgressPadding
		sections = append(sections, section{progress, vibes.ProgressBottomSpacing})
	}
	if main, ok := f.threeColumn(f.visibleSlot(slot.Main), vibes, true, "main"); ok {
		sections = append(sections, section{node: main})
	}

	if len(sections) > 0 {
		inner := Node{Kind: NodeColumn, Role: "inner"}
		for i, s := range sections {
			inner.Children = append(inner.Children, s.node)
			if i < len(sections)-1 {
				inner.Children = append(inner.Children, gap(s.spacing))
			}
		}
		children = append(children, f.panel(inner, vibes))
	}

	if len(children) == 0 {
		return nil
	}
	return f.zoneNode("bottom", vibes, children...)
}

func (f frame) zoneNode(role string, vibes theme.ZoneVibes, children ...Node) *Node {
	return &Node{Kind: NodeZone, Role: role, Padding: vibes.Padding, Children: children}
}

// panel wraps content in the global panel merged with the zone override.
// A disabled panel leaves content unwrapped.
func (f frame) panel(content Node, vibes theme.ZoneVibes) Node {
	style := f.cascade.MashPanelStyle(f.def.Styles.Panel, vibes.PanelOverride)
	if !style.Enabled {
		return content
	}
	return Node{Kind: NodePanel, Padding: style.Padding, Panel: &style, Children: []Node{content}}
}

// threeColumn lays out left, center and right. The second result is false
// when all columns are empty.
func (f frame) threeColumn(slot theme.ThreeColumnSlot, vibes theme.ZoneVibes, titleZone bool, role string) (Node, bool) {
	left, hasLeft := f.row(slot.Left, vibes.ItemSpacing, "left")
	right, hasRight := f.row(slot.Right, vibes.ItemSpacing, "right")

	var center Node
	var hasCenter bool
	if titleZone {
		center, hasCenter = f.titleArea(slot.Center, vibes)
	} else {
		center, hasCenter = f.row(slot.Center, vibes.ItemSpacing, "center")
	}

	if !hasLeft && !hasCenter && !hasRight {
		return Node{}, false
	}

	if vibes.AbsoluteCenter && hasCenter {
		base := Node{Kind: NodeRow, Role: "edges"}
		if hasLeft {
			base.Children = append(base.Children, left)
		}
		base.Children = append(base.Children, flex())
		if hasRight {
			base.Children = append(base.Children, right)
		}
		return Node{Kind: NodeOverlay, Role: role, Children: []Node{base, center}}, true
	}

	out := Node{Kind: NodeRow, Role: role}
	if hasLeft {
		out.Children = append(out.Children, left)
	}
	if hasCenter {
		if hasLeft {
			out.Children = append(out.Children, gap(vibes.GroupSpacing))
		}
		out.Children = append(out.Children, Node{Kind: NodeExpanded, Children: []Node{center}})
		if hasRight {
			out.Children = append(out.Children, gap(vibes.GroupSpacing))
		}
	} else {
		out.Children = append(out.Children, flex())
	}
	if hasRight {
		out.Children = append(out.Children, right)
	}
	return out, true
}

// row lays items out in a flat row. The second result is false when no item renders.
func (f frame) row(items []theme.Item, spacing float64, role string) (Node, bool) {
	out := Node{Kind: NodeRow, Role: role, Spacing: spacing}
	for _, item := range items {
		if node, ok := f.item(item); ok {
			out.Children = append(out.Children, node)
		}
	}
	return out, len(out.Children) > 0
}

func (f frame) visible(items []theme.Item) []theme.Item {
	var out []theme.Item
	for _, item := range items {
		if item.Visible(f.snap) {
			out = append(out, item)
		}
	}
	return out
}

func (f frame) visibleSlot(slot theme.ThreeColumnSlot) theme.ThreeColumnSlot {
	return theme.ThreeColumnSlot{
		Left:   f.visible(slot.Left),
		Center: f.visible(slot.Center),
		Right:  f.visible(slot.Right),
	}
}
