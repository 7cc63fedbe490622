package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func numbered(n int, change map[int]string) []byte {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if v, ok := change[i]; ok {
			b.WriteString(v)
		} else {
			fmt.Fprintf(&b, "line %d", i)
		}
		b.WriteString("\n")
	}
	return []byte(b.String())
}

func TestUnified_Identical(t *testing.T) {
	t.Parallel()

	content := []byte("a: 1\nb: 2\n")
	require.Empty(t, Unified(content, content, "before", "after"))
}

func TestUnified_SingleLineChange(t *testing.T) {
	t.Parallel()

	before := []byte("a: 1\nb: 2\nc: 3\n")
	after := []byte("a: 1\nb: 20\nc: 3\n")

	want := "--- layout.yaml\n" +
		"+++ layout.yaml (formatted)\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a: 1\n" +
		"-b: 2\n" +
		"+b: 20\n" +
		" c: 3\n"
	require.Equal(t, want, Unified(before, after, "layout.yaml", "layout.yaml (formatted)"))
}

func TestUnified_ContextIsLimited(t *testing.T) {
	t.Parallel()

	before := numbered(20, nil)
	after := numbered(20, map[int]string{10: "changed"})

	out := Unified(before, after, "a", "b")
	require.Contains(t, out, "@@ -7,7 +7,7 @@\n")
	require.Contains(t, out, " line 7\n")
	require.Contains(t, out, " line 13\n")
	require.NotContains(t, out, "line 6\n")
	require.NotContains(t, out, "line 14\n")
}

func TestUnified_SeparateHunks(t *testing.T) {
	t.Parallel()

	before := numbered(30, nil)
	after := numbered(30, map[int]string{2: "two", 25: "twenty-five"})

	out := Unified(before, after, "a", "b")
	require.Equal(t, 2, strings.Count(out, "@@ -"))
	require.Contains(t, out, "@@ -1,5 +1,5 @@\n")
	require.Contains(t, out, "@@ -22,7 +22,7 @@\n")
}

func TestUnified_InsertAndDelete(t *testing.T) {
	t.Parallel()

	out := Unified([]byte("a\nb\n"), []byte("a\nb\nc\n"), "a", "b")
	require.Contains(t, out, "@@ -1,2 +1,3 @@\n")
	require.Contains(t, out, "+c\n")

	out = Unified([]byte("x\n"), []byte(""), "a", "b")
	require.Contains(t, out, "@@ -1,1 +0,0 @@\n")
	require.Contains(t, out, "-x\n")
}

func TestUnified_Truncation(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < 6000; i++ {
		fmt.Fprintf(&before, "old %d\n", i)
		fmt.Fprintf(&after, "new %d\n", i)
	}

	out := Unified([]byte(before.String()), []byte(after.String()), "a", "b")
	require.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
	require.Equal(t, maxDiffLines+2, len(strings.Split(out, "\n")))
}
