// Package render draws composed screens. Outline produces a stable textual
// tree for diffs and golden tests; Styled draws the screen to a terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/skinkit/internal/coerce"
	"github.com/alexisbeaulieu97/skinkit/internal/layout"
)

const indent = "  "

// Outline renders screen as an indented tree, one node per line. The output
// depends only on screen.
func Outline(screen layout.Screen) string {
	var b strings.Builder
	fmt.Fprintf(&b, "screen %s\n", screen.ThemeID)
	for _, zone := range []struct {
		name string
		node *layout.Node
	}{
		{"top", screen.Top},
		{"middle", screen.Middle},
		{"bottom", screen.Bottom},
	} {
		if zone.node == nil {
			fmt.Fprintf(&b, "%s%s hidden\n", indent, zone.name)
			continue
		}
		writeNode(&b, *zone.node, 1)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n layout.Node, depth int) {
	b.WriteString(strings.Repeat(indent, depth))
	b.WriteString(describe(n))
	b.WriteByte('\n')
	for _, child := range n.Children {
		writeNode(b, child, depth+1)
	}
}

func describe(n layout.Node) string {
	parts := []string{string(n.Kind)}
	if n.Role != "" {
		parts = append(parts, n.Role)
	}

	switch n.Kind {
	case layout.NodeGap:
		parts = append(parts, num(n.Size))
	case layout.NodeFlex:
		parts = append(parts, "flex="+strconv.Itoa(n.Flex))
	case layout.NodeRow, layout.NodeWrap:
		if n.Spacing > 0 {
			parts = append(parts, "spacing="+num(n.Spacing))
		}
	case layout.NodePanel:
		if p := n.Panel; p != nil {
			parts = append(parts, "radius="+num(p.Radius), "color="+p.Color)
			if p.ShowBorder {
				parts = append(parts, "border="+p.BorderColor)
			}
		}
	case layout.NodeItem:
		parts = append(parts, describeElement(n.Element)...)
	case layout.NodeProgress:
		if p := n.Progress; p != nil {
			parts = append(parts, string(p.Style), "value="+strconv.FormatFloat(p.Value, 'f', 3, 64))
			if p.Implicit {
				parts = append(parts, "implicit")
			}
			if !p.Enabled {
				parts = append(parts, "disabled")
			}
		}
	}

	if !n.Padding.IsZero() && (n.Kind == layout.NodeZone || n.Kind == layout.NodePanel || n.Kind == layout.NodeProgress || n.Role == "outside") {
		parts = append(parts, "padding="+insets(n.Padding))
	}
	return strings.Join(parts, " ")
}

func describeElement(el *layout.Element) []string {
	if el == nil {
		return nil
	}
	parts := []string{el.ID, "[" + el.Kind.String() + "]"}
	if el.Label != "" {
		parts = append(parts, strconv.Quote(el.Label))
	}
	if len(el.Lines) > 1 {
		parts = append(parts, "lines="+strconv.Itoa(len(el.Lines)))
	}
	if !el.Enabled {
		parts = append(parts, "disabled")
	}
	switch {
	case el.Button != nil:
		parts = append(parts, "size="+num(el.Button.Size), "icon="+el.Button.IconColor)
	case el.Chip != nil:
		parts = append(parts, "bg="+el.Chip.BackgroundColor, "fg="+el.Chip.TextColor)
	case el.Text != nil:
		parts = append(parts, "font="+num(el.Text.FontSize)+"/"+strconv.Itoa(el.Text.FontWeight), "fg="+el.Text.TextColor)
	}
	return parts
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func insets(e coerce.EdgeInsets) string {
	return strings.Join([]string{num(e.Top), num(e.Right), num(e.Bottom), num(e.Left)}, ",")
}
