// Package layout composes a parsed theme and a controller snapshot into a
// renderable node tree. Composition is a pure function of its inputs and is
// recomputed from scratch for every snapshot.
package layout

import (
	"github.com/alexisbeaulieu97/skinkit/internal/coerce"
	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

// NodeKind identifies how a renderer should lay out a node.
type NodeKind string

const (
	// NodeZone is the root of a top, middle or bottom zone.
	NodeZone NodeKind = "zone"
	// NodePanel draws the panel background behind its single child.
	NodePanel NodeKind = "panel"
	// NodeColumn stacks children vertically.
	NodeColumn NodeKind = "column"
	// NodeRow lays children out horizontally with Spacing between them.
	NodeRow NodeKind = "row"
	// NodeWrap is a row that wraps onto further lines.
	NodeWrap NodeKind = "wrap"
	// NodeOverlay draws Children[0] and centers Children[1] over it,
	// independent of the widths inside Children[0].
	NodeOverlay NodeKind = "overlay"
	// NodeExpanded takes the remaining horizontal space and centers its child.
	NodeExpanded NodeKind = "expanded"
	// NodeFlex is empty space sharing the remaining width by Flex.
	NodeFlex NodeKind = "flex"
	// NodeGap is fixed empty space of Size.
	NodeGap NodeKind = "gap"
	// NodeItem renders Element.
	NodeItem NodeKind = "item"
	// NodeProgress renders Progress.
	NodeProgress NodeKind = "progress"
)

// Node is one element of the renderable tree.
type Node struct {
	Kind     NodeKind          `json:"kind"`
	Role     string            `json:"role,omitempty"`
	Children []Node            `json:"children,omitempty"`
	Spacing  float64           `json:"spacing,omitempty"`
	Size     float64           `json:"size,omitempty"`
	Flex     int               `json:"flex,omitempty"`
	Padding  coerce.EdgeInsets `json:"padding"`
	Panel    *theme.PanelStyle `json:"panel,omitempty"`
	Element  *Element          `json:"element,omitempty"`
	Progress *Progress         `json:"progress,omitempty"`
}

// Element is a resolved theme item ready to draw.
type Element struct {
	ID      string             `json:"id"`
	Kind    theme.ItemKind     `json:"kind"`
	Enabled bool               `json:"enabled"`
	Label   string             `json:"label,omitempty"`
	Lines   []string           `json:"lines,omitempty"`
	Button  *theme.ButtonStyle `json:"button,omitempty"`
	Text    *theme.TextStyle   `json:"text,omitempty"`
	Chip    *theme.ChipStyle   `json:"chip,omitempty"`
	Item    theme.Item         `json:"-"`
}

// Progress is a resolved progress slider.
type Progress struct {
	Value    float64             `json:"value"`
	Style    theme.ProgressStyle `json:"style"`
	Position string              `json:"position"`
	Duration string              `json:"duration"`
	Implicit bool                `json:"implicit"`
	Enabled  bool                `json:"enabled"`
}

// Screen is the composed overlay. A nil zone is suppressed for this snapshot.
type Screen struct {
	ThemeID string `json:"themeId"`
	Top     *Node  `json:"top"`
	Middle  *Node  `json:"middle"`
	Bottom  *Node  `json:"bottom"`
}

// Zones returns the present zones in top-to-bottom order.
func (s Screen) Zones() []Node {
	var out []Node
	for _, z := range []*Node{s.Top, s.Middle, s.Bottom} {
		if z != nil {
			out = append(out, *z)
		}
	}
	return out
}

// Walk visits n and its descendants depth-first. Returning false stops descent into a node.
func (n Node) Walk(visit func(Node) bool) {
	if !visit(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Find returns every descendant (including n) for which match holds.
func (n Node) Find(match func(Node) bool) []Node {
	var out []Node
	n.Walk(func(node Node) bool {
		if match(node) {
			out = append(out, node)
		}
		return true
	})
	return out
}

func gap(size float64) Node {
	return Node{Kind: NodeGap, Size: size}
}

func flex() Node {
	return Node{Kind: NodeFlex, Flex: 1}
}
