package layout

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

const watchingLabel = "Now watching"

// item resolves a single theme item. The second result is false when the
// item has nothing to show for this snapshot.
func (f frame) item(item theme.Item) (Node, bool) {
	switch item.Kind() {
	case theme.KindSpacer:
		if size := item.Double("size", 0); size > 0 {
			return gap(size), true
		}
		return Node{Kind: NodeFlex, Flex: max(1, item.Flex())}, true
	case theme.KindProgress:
		return f.progress(item, false), true
	}

	el := &Element{
		ID:      item.ID,
		Kind:    item.Kind(),
		Enabled: item.Enabled(f.snap),
		Item:    item,
	}

	override := f.composer.overrides[item.ID]
	switch el.Kind {
	case theme.KindBadge:
		style := theme.Reduce(f.def.Styles.Chip, f.cascade.MashChipStyle, item.Style, override)
		el.Chip = &style
	case theme.KindTitle, theme.KindStack, theme.KindText:
		style := theme.Reduce(f.def.Styles.Text, f.cascade.MashTextStyle, item.Style, override)
		el.Text = &style
	default:
		family := f.def.Styles.Button
		if item.Primary() {
			family = f.def.Styles.PrimaryButton
		}
		style := theme.Reduce(family, f.cascade.MashButtonStyle, item.Style, override)
		el.Button = &style
	}

	if !f.fillContent(el) {
		return Node{}, false
	}
	return Node{Kind: NodeItem, Element: el}, true
}

func (f frame) progress(item theme.Item, implicit bool) Node {
	style := theme.ProgressStyle(strings.ToLower(item.String("progressStyle", string(f.def.Bottom.ProgressStyle))))
	if style != theme.ProgressIOS && style != theme.ProgressCapsule {
		style = f.def.Bottom.ProgressStyle
	}
	return Node{
		Kind: NodeProgress,
		Progress: &Progress{
			Value:    ProgressFraction(f.snap.CurrentPosition, f.snap.EpisodeDuration),
			Style:    style,
			Position: f.snap.CurrentPosition,
			Duration: f.snap.EpisodeDuration,
			Implicit: implicit,
			Enabled:  item.Enabled(f.snap),
		},
	}
}

// fillContent sets the label and lines of el from the snapshot. It reports
// false when the element should be omitted.
func (f frame) fillContent(el *Element) bool {
	item := el.Item
	snap := f.snap

	switch item.ID {
	case theme.IDTitle:
		el.Label = firstNonEmpty(item.String("text", ""), snap.CurrentEpisode.Title, snap.AnilistData.Title, deref(snap.ItemName))
	case theme.IDEpisodeBadge:
		if snap.CurrentEpisode.Number > 0 {
			el.Label = fmt.Sprintf("EP %d", snap.CurrentEpisode.Number)
		} else {
			el.Label = item.String("text", "")
		}
	case theme.IDSeriesBadge:
		el.Label = firstNonEmpty(snap.AnilistData.Title, item.String("text", ""))
	case theme.IDQualityBadge:
		if snap.VideoHeight == nil || *snap.VideoHeight <= 0 {
			return false
		}
		el.Label = fmt.Sprintf("%dp", *snap.VideoHeight)
	case theme.IDLabelStack:
		for _, line := range []string{item.String("topText", ""), item.String("bottomText", "")} {
			if line != "" {
				el.Lines = append(el.Lines, line)
			}
		}
		if len(el.Lines) > 0 {
			el.Label = el.Lines[0]
		}
	case theme.IDWatchingLabel:
		el.Label = item.String("text", watchingLabel)
	case theme.IDText:
		el.Lines = item.Strings("lines")
		el.Label = firstNonEmpty(item.String("text", ""), strings.Join(el.Lines, " "))
	case theme.IDPlayPause:
		el.Label = "play"
		if snap.IsPlaying {
			el.Label = "pause"
		}
	case "seek_forward", "seek_backward", "rewind", "forward":
		sign := "+"
		if item.ID == "seek_backward" || item.ID == "rewind" {
			sign = "-"
		}
		el.Label = fmt.Sprintf("%s%ds", sign, snap.PlayerSettings.SeekDuration)
	case "skip", "skip_intro":
		el.Label = item.String("text", fmt.Sprintf("+%ds", snap.PlayerSettings.SkipDuration))
	default:
		el.Label = item.String("label", item.String("text", item.ID))
	}
	return true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
