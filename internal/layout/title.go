package layout

import "github.com/alexisbeaulieu97/skinkit/internal/theme"

const (
	// titleAreaGap separates the sections of a title area.
	titleAreaGap = 4
	// badgeSpacing separates badges within their wrapping row.
	badgeSpacing = 6
)

// titleArea composes a title-zone center column. Stack items come first,
// then the title, then the badges wrapped into a row, then everything else
// as a flat row. Without any title, badge or stack item it degrades to a
// flat row.
func (f frame) titleArea(items []theme.Item, vibes theme.ZoneVibes) (Node, bool) {
	var stack, title, badges, others []theme.Item
	for _, item := range items {
		switch item.Kind() {
		case theme.KindStack:
			stack = append(stack, item)
		case theme.KindTitle:
			title = append(title, item)
		case theme.KindBadge:
			badges = append(badges, item)
		default:
			others = append(others, item)
		}
	}

	if len(stack) == 0 && len(title) == 0 && len(badges) == 0 {
		return f.row(items, vibes.ItemSpacing, "center")
	}

	out := Node{Kind: NodeColumn, Role: "title-area"}
	add := func(section Node, ok bool) {
		if !ok {
			return
		}
		if len(out.Children) > 0 {
			out.Children = append(out.Children, gap(titleAreaGap))
		}
		out.Children = append(out.Children, section)
	}

	add(f.column(stack, "stack"))
	add(f.column(title, "title"))

	wrap, ok := f.row(badges, badgeSpacing, "badges")
	wrap.Kind = NodeWrap
	add(wrap, ok)

	add(f.row(others, vibes.ItemSpacing, "others"))

	return out, len(out.Children) > 0
}

func (f frame) column(items []theme.Item, role string) (Node, bool) {
	out := Node{Kind: NodeColumn, Role: role}
	for _, item := range items {
		if node, ok := f.item(item); ok {
			out.Children = append(out.Children, node)
		}
	}
	return out, len(out.Children) > 0
}
