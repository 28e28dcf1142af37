package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkLines_GreedyPacking(t *testing.T) {
	// 50 lines of exactly 50 chars; each costs 51 with its newline, so 9
	// fit per 500-rune chunk: five full chunks plus a 5-line remainder.
	line := strings.Repeat("x", 50)
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = line
	}

	chunks := ChunkLines(lines, 500)
	require.Len(t, chunks, 6)
	for i, c := range chunks {
		wantLines := 9
		if i == len(chunks)-1 {
			wantLines = 5
		}
		assert.Len(t, strings.Split(c, "\n"), wantLines, "chunk %d", i)
		assert.LessOrEqual(t, len([]rune(c)), 500, "chunk %d over budget", i)
	}
}

func TestChunkLines_RoundTrip(t *testing.T) {
	lines := []string{
		"📻 **UOC Weather Net — Utah** · Jan 02, 03:04 PM",
		"🗺️ **Regional Conditions**",
		"__Wasatch Front & Canyons__",
		`• **Ogden** Now 54°F (feels 51°F), Wind 8 mph (gusts 15)`,
		"• **Moab** — data unavailable",
	}

	chunks := ChunkLines(lines, 60)
	require.NotEmpty(t, chunks)

	var got []string
	for _, c := range chunks {
		got = append(got, strings.Split(c, "\n")...)
	}
	if diff := cmp.Diff(lines, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestChunkLines_OversizedLineEmittedWhole(t *testing.T) {
	long := strings.Repeat("y", 120)
	chunks := ChunkLines([]string{"short", long, "tail"}, 50)

	require.Len(t, chunks, 3)
	assert.Equal(t, "short", chunks[0])
	assert.Equal(t, long, chunks[1], "oversized line must not be split or truncated")
	assert.Equal(t, "tail", chunks[2])
}

func TestChunkLines_SingleChunkWhenUnderBudget(t *testing.T) {
	lines := []string{"a", "b", "c"}
	chunks := ChunkLines(lines, DefaultChunkLen)
	require.Len(t, chunks, 1)
	assert.Equal(t, "a\nb\nc", chunks[0])
}

func TestChunkLines_DropsWhitespaceOnlyChunks(t *testing.T) {
	assert.Empty(t, ChunkLines([]string{"", "", ""}, 10))
}

func TestChunkLines_CountsRunesNotBytes(t *testing.T) {
	// Four 4-byte runes per line; two lines fit a 10-rune budget only when
	// sizes are counted in runes.
	line := "🗻🗻🗻🗻"
	chunks := ChunkLines([]string{line, line}, 10)
	require.Len(t, chunks, 1)
	assert.Equal(t, line+"\n"+line, chunks[0])
}
