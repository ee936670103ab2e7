package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// PreviewProgress is shown when position or duration cannot be used.
const PreviewProgress = 0.35

// maxTimecodeDigits bounds each field so the total cannot overflow.
const maxTimecodeDigits = 6

// ParseTimecode parses MM:SS or HH:MM:SS into seconds. Fields are unsigned
// decimal numbers of at most maxTimecodeDigits digits.
func ParseTimecode(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	total := 0
	for _, part := range parts {
		if part == "" || len(part) > maxTimecodeDigits || strings.TrimLeft(part, "0123456789") != "" {
			return 0, false
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// ProgressFraction returns position/duration clamped to [0, 1], or
// PreviewProgress when either fails to parse or duration is zero.
func ProgressFraction(position, duration string) float64 {
	pos, ok := ParseTimecode(position)
	if !ok {
		return PreviewProgress
	}
	dur, ok := ParseTimecode(duration)
	if !ok || dur == 0 {
		return PreviewProgress
	}
	return min(1, max(0, float64(pos)/float64(dur)))
}

// FormatTimecode renders seconds as MM:SS, or HH:MM:SS when hours is set or
// the value needs it.
func FormatTimecode(seconds int, hours bool) string {
	seconds = max(0, seconds)
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	if hours || h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// SeekTimecode moves position by delta seconds, clamped to [0, duration]
// when duration parses. The result keeps the hour field when either input
// has one.
func SeekTimecode(position, duration string, delta int) string {
	pos, _ := ParseTimecode(position)
	pos += delta
	if dur, ok := ParseTimecode(duration); ok && dur > 0 {
		pos = min(pos, dur)
	}
	hours := strings.Count(position, ":") == 2 || strings.Count(duration, ":") == 2
	return FormatTimecode(pos, hours)
}
