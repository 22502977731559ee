package byterange

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T, opts Options) *Parser {
	t.Helper()
	p, err := NewParser(opts)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func TestNewParserDefaults(t *testing.T) {
	p := newTestParser(t, Options{})
	assert.Equal(t, DefaultOptions().MaxCachedHeader, p.maxCached)
	assert.Same(t, slog.Default(), p.log)
}

func TestParserMatchesParse(t *testing.T) {
	p := newTestParser(t, Options{CacheSize: 16})

	headers := []string{
		"bytes=10-100", "bytes=10-", "bytes=-100", "invalid input",
		"bytes=500-600,601-999", "bytes=5-4", "bytes=-15", "bytes= 0 - 1 ,, -3",
	}
	sizes := []uint64{0, 1, 10, 200, 10000}

	// twice, so the second round is served from the cache
	for round := 0; round < 2; round++ {
		for _, h := range headers {
			for _, size := range sizes {
				assert.Equal(t, Parse(h, size), p.Parse(h, size), "header %q size %d", h, size)
				assert.Equal(t, Inspect(h, size), p.Inspect(h, size), "header %q size %d", h, size)
			}
		}
	}
}

func TestParserCache(t *testing.T) {
	p := newTestParser(t, Options{MaxCachedHeader: 16})

	p.Parse("bytes=0-", 10)
	assert.True(t, p.cache.Has("bytes=0-"))

	// unmatched headers are cached too
	p.Parse("nope", 10)
	assert.True(t, p.cache.Has("nope"))

	long := "bytes=" + strings.Repeat("0", 20) + "-"
	assert.Len(t, p.Parse(long, 10), 1)
	assert.False(t, p.cache.Has(long))

	// zero size never reaches the tokenizer
	p.Parse("bytes=1-", 0)
	assert.False(t, p.cache.Has("bytes=1-"))
}

func TestParserConcurrent(t *testing.T) {
	p := newTestParser(t, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				ranges := p.Parse("bytes=0-9,20-", 100)
				if assert.Len(t, ranges, 2) {
					assert.Equal(t, ByteRange{Offset: 20, Length: 80}, ranges[1])
				}
			}
		}()
	}
	wg.Wait()

	hits, misses := p.Stats()
	assert.Positive(t, hits)
	assert.LessOrEqual(t, misses, int64(8))
}

func TestParserLogsDrops(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := newTestParser(t, Options{Log: log})

	p.Parse("bytes=5-4,0-1", 10)
	assert.Contains(t, buf.String(), "dropped range spec")
	assert.Contains(t, buf.String(), "spec=5-4")

	buf.Reset()
	p.Parse("bytes=x", 10)
	assert.Contains(t, buf.String(), "ignoring range header")
}
