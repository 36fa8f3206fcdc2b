package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	in := []byte("line1\nline2\nline3\n")
	assert.Empty(t, GenerateUnifiedDiff(in, in, "a", "b", 3))
	assert.True(t, Count(in, in).Empty())
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	expected := []byte("line1\nline2\nline3\n")
	actual := []byte("line1\nmodified\nline3\n")

	result := GenerateUnifiedDiff(expected, actual, "store/12@abc1234", "store/12@def5678", 3)

	assert.True(t, strings.HasPrefix(result, "--- store/12@abc1234\n+++ store/12@def5678\n"))
	assert.Contains(t, result, "@@ -1,3 +1,3 @@\n")
	assert.Contains(t, result, " line1\n-line2\n+modified\n line3\n")
	assert.Equal(t, Stats{Added: 1, Removed: 1}, Count(expected, actual))
}

func TestGenerateUnifiedDiff_SeparateHunks(t *testing.T) {
	var a, b strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&a, "l%d\n", i)
		switch i {
		case 2:
			b.WriteString("changed-2\n")
		case 18:
			b.WriteString("changed-18\n")
		default:
			fmt.Fprintf(&b, "l%d\n", i)
		}
	}

	result := GenerateUnifiedDiff([]byte(a.String()), []byte(b.String()), "a", "b", 1)
	require.Equal(t, 2, strings.Count(result, "@@ -"))
	assert.Contains(t, result, "@@ -1,3 +1,3 @@")
	assert.Contains(t, result, "@@ -17,3 +17,3 @@")
	assert.NotContains(t, result, " l10\n")
}

func TestGenerateUnifiedDiff_AddedLines(t *testing.T) {
	result := GenerateUnifiedDiff([]byte("a\n"), []byte("a\nb\nc\n"), "old", "new", 3)
	assert.Contains(t, result, "+b\n+c\n")
	assert.Equal(t, "+2 -0", Count([]byte("a\n"), []byte("a\nb\nc\n")).String())
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	var a, b strings.Builder
	for i := 0; i < 6000; i++ {
		fmt.Fprintf(&a, "old %d\n", i)
		fmt.Fprintf(&b, "new %d\n", i)
	}
	result := GenerateUnifiedDiff([]byte(a.String()), []byte(b.String()), "a", "b", 0)
	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}
