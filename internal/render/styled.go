package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/skinkit/internal/coerce"
	"github.com/alexisbeaulieu97/skinkit/internal/color"
	"github.com/alexisbeaulieu97/skinkit/internal/layout"
	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

const (
	// DefaultWidth is used when the caller has no terminal width.
	DefaultWidth = 80

	// Theme sizes are logical pixels. A terminal cell is cellWidth wide and
	// lineHeight tall.
	cellWidth  = 8.0
	lineHeight = 16.0

	minBarWidth = 10
	// maxCells bounds any single size taken from a theme.
	maxCells = DefaultWidth * 4
	// Fills more transparent than this are not drawn.
	minVisibleAlpha = 0.05
)

// Styled draws screen with lipgloss at the given terminal width.
func Styled(screen layout.Screen, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	var blocks []string
	for _, zone := range screen.Zones() {
		blocks = append(blocks, node(zone, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func node(n layout.Node, width int) string {
	switch n.Kind {
	case layout.NodeZone:
		return zone(n, width)
	case layout.NodePanel:
		return panel(n, width)
	case layout.NodeColumn:
		return column(n, width)
	case layout.NodeRow:
		return row(n, width)
	case layout.NodeWrap:
		return wrap(n, width)
	case layout.NodeOverlay:
		return overlay(n, width)
	case layout.NodeExpanded:
		if len(n.Children) == 0 {
			return spaces(width)
		}
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, node(n.Children[0], width))
	case layout.NodeFlex:
		return spaces(width)
	case layout.NodeGap:
		return spaces(cols(n.Size))
	case layout.NodeItem:
		return element(n.Element)
	case layout.NodeProgress:
		return progressBar(n, width)
	default:
		return ""
	}
}

func zone(n layout.Node, width int) string {
	style := padded(lipgloss.NewStyle(), n.Padding)
	inner := max(1, width-style.GetHorizontalPadding())

	var parts []string
	for _, child := range n.Children {
		parts = append(parts, node(child, inner))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if n.Role == "middle" {
		body = lipgloss.PlaceHorizontal(inner, lipgloss.Center, body)
	}
	return style.Render(body)
}

func panel(n layout.Node, width int) string {
	p := n.Panel
	if p == nil || len(n.Children) == 0 {
		return column(n, width)
	}

	style := padded(lipgloss.NewStyle(), p.Padding)
	if p.ShowBorder && p.BorderWidth > 0 {
		style = style.Border(lipgloss.RoundedBorder())
		if c, ok := terminalColor(p.BorderColor); ok {
			style = style.BorderForeground(c)
		}
	}
	if p.ShowBackground {
		if c, ok := terminalColor(p.Color); ok {
			style = style.Background(c)
		}
	}

	inner := max(1, width-style.GetHorizontalFrameSize())
	body := lipgloss.PlaceHorizontal(inner, lipgloss.Left, node(n.Children[0], inner))
	return style.Render(body)
}

func column(n layout.Node, width int) string {
	var parts []string
	for _, child := range n.Children {
		if child.Kind == layout.NodeGap {
			for range lines(child.Size) {
				parts = append(parts, "")
			}
			continue
		}
		parts = append(parts, node(child, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// row gives fixed children their natural width and shares what is left
// between flex, expanded and progress children by weight.
func row(n layout.Node, width int) string {
	if len(n.Children) == 0 {
		return ""
	}
	spacing := cols(n.Spacing)
	parts := make([]string, len(n.Children))
	weights := make([]int, len(n.Children))
	used := spacing * (len(n.Children) - 1)
	totalWeight := 0

	for i, child := range n.Children {
		switch child.Kind {
		case layout.NodeFlex:
			weights[i] = max(1, child.Flex)
		case layout.NodeExpanded, layout.NodeProgress:
			weights[i] = 1
		default:
			parts[i] = node(child, width)
			used += lipgloss.Width(parts[i])
		}
		totalWeight += weights[i]
	}

	remaining := max(0, width-used)
	assigned := 0
	seen := 0
	for i, child := range n.Children {
		if weights[i] == 0 {
			continue
		}
		seen += weights[i]
		share := remaining*seen/totalWeight - assigned
		assigned += share
		parts[i] = node(child, share)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, interleave(parts, spaces(spacing))...)
}

// wrap places children left to right, breaking onto a new line when the
// next child would overflow width.
func wrap(n layout.Node, width int) string {
	spacing := cols(n.Spacing)
	var out []string
	var current []string
	currentWidth := 0
	for _, child := range n.Children {
		part := node(child, width)
		w := lipgloss.Width(part)
		if len(current) > 0 && currentWidth+spacing+w > width {
			out = append(out, lipgloss.JoinHorizontal(lipgloss.Center, interleave(current, spaces(spacing))...))
			current, currentWidth = nil, 0
		}
		if len(current) > 0 {
			currentWidth += spacing
		}
		current = append(current, part)
		currentWidth += w
	}
	if len(current) > 0 {
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Center, interleave(current, spaces(spacing))...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// overlay centers Children[1] on the full width, independent of the edge
// groups in Children[0]. When the edges leave no room for exact centering
// the free space is split evenly instead.
func overlay(n layout.Node, width int) string {
	if len(n.Children) != 2 {
		return column(n, width)
	}

	var left, right []string
	afterFlex := false
	for _, child := range n.Children[0].Children {
		if child.Kind == layout.NodeFlex {
			afterFlex = true
			continue
		}
		if afterFlex {
			right = append(right, node(child, width))
		} else {
			left = append(left, node(child, width))
		}
	}
	leftStr := lipgloss.JoinHorizontal(lipgloss.Center, left...)
	rightStr := lipgloss.JoinHorizontal(lipgloss.Center, right...)
	lw, rw := lipgloss.Width(leftStr), lipgloss.Width(rightStr)

	center := node(n.Children[1], max(1, width-lw-rw))
	cw := lipgloss.Width(center)

	start := (width - cw) / 2
	leftPad := start - lw
	rightPad := width - start - cw - rw
	if leftPad < 1 || rightPad < 1 {
		free := max(0, width-lw-cw-rw)
		leftPad = free / 2
		rightPad = free - leftPad
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, leftStr, spaces(leftPad), center, spaces(rightPad), rightStr)
}

func element(el *layout.Element) string {
	if el == nil {
		return ""
	}
	style := lipgloss.NewStyle()

	switch {
	case el.Button != nil:
		b := el.Button
		fg := b.IconColor
		if !el.Enabled {
			fg = b.DisabledIconColor
		}
		style = withForeground(style.Padding(0, 1), fg)
		style = withBackground(style, b.Color)
		if el.Item.Primary() {
			style = style.Bold(true)
		}
		return style.Render(el.Label)

	case el.Chip != nil:
		c := el.Chip
		style = withForeground(style.Padding(0, 1), c.TextColor)
		style = withBackground(style, firstVisible(c.BackgroundColor, c.Color))
		style = style.Bold(c.FontWeight >= 600)
		return style.Render(el.Label)

	case el.Text != nil:
		t := el.Text
		style = withForeground(style, t.TextColor)
		style = withBackground(style, t.BackgroundColor)
		style = style.Bold(t.FontWeight >= 600).Faint(!el.Enabled)
		text := el.Label
		if len(el.Lines) > 0 {
			text = strings.Join(el.Lines, "\n")
		}
		return style.Render(text)
	}

	return el.Label
}

func progressBar(n layout.Node, width int) string {
	p := n.Progress
	if p == nil {
		return ""
	}
	label := fmt.Sprintf("%s / %s", p.Position, p.Duration)
	padding := cols(n.Padding.Left) + cols(n.Padding.Right)
	barWidth := max(minBarWidth, width-padding-lipgloss.Width(label)-1)

	opts := []progress.Option{progress.WithoutPercentage(), progress.WithWidth(barWidth)}
	if p.Style == theme.ProgressCapsule {
		opts = append(opts, progress.WithSolidFill("#FFFFFF"))
	} else {
		opts = append(opts, progress.WithDefaultGradient())
	}
	bar := progress.New(opts...)

	view := lipgloss.JoinHorizontal(lipgloss.Center, bar.ViewAs(p.Value), " ", label)
	style := lipgloss.NewStyle().PaddingLeft(cols(n.Padding.Left)).PaddingRight(cols(n.Padding.Right)).Faint(!p.Enabled)
	return style.Render(view)
}

func padded(style lipgloss.Style, e coerce.EdgeInsets) lipgloss.Style {
	return style.Padding(lines(e.Top), cols(e.Right), lines(e.Bottom), cols(e.Left))
}

// terminalColor converts a resolved rgba string. Fills that are nearly
// transparent report false.
func terminalColor(rgba string) (lipgloss.Color, bool) {
	if alpha, ok := color.Alpha(rgba); !ok || alpha < minVisibleAlpha {
		return "", false
	}
	hex, ok := color.ToHex(rgba)
	if !ok {
		return "", false
	}
	return lipgloss.Color(hex), true
}

func withForeground(style lipgloss.Style, rgba string) lipgloss.Style {
	if c, ok := terminalColor(rgba); ok {
		return style.Foreground(c)
	}
	return style
}

func withBackground(style lipgloss.Style, rgba string) lipgloss.Style {
	if c, ok := terminalColor(rgba); ok {
		return style.Background(c)
	}
	return style
}

func firstVisible(values ...string) string {
	for _, v := range values {
		if _, ok := terminalColor(v); ok {
			return v
		}
	}
	return ""
}

func interleave(parts []string, sep string) []string {
	if sep == "" || len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, part)
	}
	return out
}

func cols(px float64) int {
	return cells(px, cellWidth)
}

func lines(px float64) int {
	return cells(px, lineHeight)
}

// cells converts px to a count in [0, maxCells]. NaN is zero.
func cells(px, unit float64) int {
	n := math.Round(px / unit)
	if !(n > 0) {
		return 0
	}
	return int(math.Min(n, maxCells))
}

func spaces(n int) string {
	return strings.Repeat(" ", min(max(0, n), maxCells))
}
