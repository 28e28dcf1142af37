package domain

import (
	"strings"
	"unicode/utf8"
)

// DefaultChunkLen is the per-message rune budget, leaving headroom under
// Discord's hard 2000-character limit.
const DefaultChunkLen = 1900

// ChunkLines greedily packs bulletin lines into transport-sized chunks.
// Each line is counted with its trailing newline; when a line would push the
// buffer past limit, the buffer is flushed and the line starts a new chunk.
// A line never spans two chunks, and a single line longer than the limit is
// still emitted whole as an oversized chunk. Whitespace-only buffers are
// dropped; flushed chunks lose their trailing newline.
func ChunkLines(lines []string, limit int) []string {
	var chunks []string
	var buf strings.Builder
	bufLen := 0

	flush := func() {
		if strings.TrimSpace(buf.String()) != "" {
			chunks = append(chunks, strings.TrimRight(buf.String(), "\n"))
		}
		buf.Reset()
		bufLen = 0
	}

	for _, line := range lines {
		n := utf8.RuneCountInString(line) + 1
		if bufLen > 0 && bufLen+n > limit {
			flush()
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		bufLen += n
	}
	flush()

	return chunks
}
