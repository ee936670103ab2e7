package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("screen a\n  top hidden\n")
	out, stats := Unified(content, content, "unlocked", "locked")
	require.Empty(t, out)
	require.False(t, stats.Changed())
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	from := []byte("screen a\n  item play_pause [button] \"play\"\n  bottom hidden\n")
	to := []byte("screen a\n  item play_pause [button] \"pause\"\n  bottom hidden\n")

	out, stats := Unified(from, to, "paused", "playing")
	want := `--- paused
+++ playing
@@ -1,3 +1,3 @@
 screen a
-  item play_pause [button] "play"
+  item play_pause [button] "pause"
   bottom hidden
`
	require.Equal(t, want, out)
	require.Equal(t, Stats{Added: 1, Removed: 1}, stats)
}

func TestUnifiedWholeZoneDisappears(t *testing.T) {
	t.Parallel()

	from := []byte("screen a\n  zone top\n    row main\n  middle hidden\n")
	to := []byte("screen a\n  top hidden\n  middle hidden\n")

	out, stats := Unified(from, to, "unlocked", "locked")
	require.Contains(t, out, "-  zone top\n")
	require.Contains(t, out, "-    row main\n")
	require.Contains(t, out, "+  top hidden\n")
	require.Contains(t, out, "   middle hidden\n")
	require.Equal(t, 2, stats.Removed)
	require.Equal(t, 1, stats.Added)
}

func TestUnifiedIsDeterministic(t *testing.T) {
	t.Parallel()

	from := []byte("a\nb\nc\n")
	to := []byte("a\nc\nd\n")
	first, _ := Unified(from, to, "x", "y")
	second, _ := Unified(from, to, "x", "y")
	require.Equal(t, first, second)
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	var from, to strings.Builder
	for i := range maxDiffLines {
		fmt.Fprintf(&from, "old %d\n", i)
		fmt.Fprintf(&to, "new %d\n", i)
	}

	out, stats := Unified([]byte(from.String()), []byte(to.String()), "from", "to")
	require.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
	require.Equal(t, maxDiffLines, stats.Added)
	require.Equal(t, maxDiffLines, stats.Removed)
}
