package provider_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sintese/internal/provider"
)

func pageText(n int, body string) string {
	return fmt.Sprintf("\n[PÁGINA %d]\n%s", n, body)
}

func TestSplitChunks_SmallTextSingleChunk(t *testing.T) {
	text := pageText(1, "petição inicial") + pageText(2, "procuração")

	chunks := provider.SplitChunks(text, 10000)
	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "petição inicial")
	assert.Contains(t, chunks[0], "procuração")
}

func TestSplitChunks_SplitsOnPageBoundaries(t *testing.T) {
	page := strings.Repeat("a", 400)
	text := pageText(1, page) + pageText(2, page) + pageText(3, page)

	chunks := provider.SplitChunks(text, 500)
	require.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 500)
	}
}

func TestSplitChunks_HardSplitsOversizedPage(t *testing.T) {
	text := pageText(1, strings.Repeat("b", 1200))

	chunks := provider.SplitChunks(text, 500)
	require.GreaterOrEqual(t, len(chunks), 3)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 500)
	}
}

func TestSplitChunks_HardSplitKeepsRunesWhole(t *testing.T) {
	// "çã" is 4 bytes, so a 501-byte limit would land mid-rune without the
	// boundary backing up.
	body := strings.Repeat("çã", 600)
	text := pageText(1, body)

	chunks := provider.SplitChunks(text, 501)
	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk))
		assert.LessOrEqual(t, len(chunk), 501)
	}
	assert.Equal(t, body, strings.Join(chunks, ""))
}

func TestSplitChunks_NoMarkersStillChunks(t *testing.T) {
	chunks := provider.SplitChunks(strings.Repeat("c", 300), 10000)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 300)
}

func TestSplitChunks_EmptyInput(t *testing.T) {
	chunks := provider.SplitChunks("", 10000)
	require.Len(t, chunks, 1)
	assert.Equal(t, "", chunks[0])
}
