package byterange

import (
	"log/slog"

	"github.com/kapetan-io/tackle/set"
	"github.com/maypok86/otter"
	"github.com/samber/mo"

	"github.com/slatedb/byterange-go/internal/grammar"
)

// ------------------------------------------------
// Parser
// ------------------------------------------------

// Parser is a Range header parser for servers that see the same headers over
// and over, such as video players asking for "bytes=0-". It remembers how
// headers tokenize; the size dependent part is computed on every call.
// A Parser is safe for concurrent use.
type Parser struct {
	cache     otter.Cache[string, mo.Option[[]grammar.Spec]]
	maxCached int
	log       *slog.Logger
}

func NewParser(opts Options) (*Parser, error) {
	defaults := DefaultOptions()
	set.Default(&opts.CacheSize, defaults.CacheSize)
	set.Default(&opts.MaxCachedHeader, defaults.MaxCachedHeader)
	set.Default(&opts.Log, defaults.Log)

	cache, err := otter.MustBuilder[string, mo.Option[[]grammar.Spec]](opts.CacheSize).
		CollectStats().
		Build()
	if err != nil {
		return nil, err
	}

	return &Parser{
		cache:     cache,
		maxCached: opts.MaxCachedHeader,
		log:       opts.Log,
	}, nil
}

// Parse behaves like the package level Parse.
func (p *Parser) Parse(header string, totalSize uint64) []ByteRange {
	if totalSize == 0 {
		return []ByteRange{}
	}
	return p.Inspect(header, totalSize).Ranges
}

// Inspect behaves like the package level Inspect.
func (p *Parser) Inspect(header string, totalSize uint64) Report {
	report := inspect(header, p.tokenize(header), totalSize)
	if !report.Matched {
		p.log.Debug("ignoring range header", "header", header)
		return report
	}
	for _, d := range report.Dropped {
		p.log.Debug("dropped range spec",
			"spec", d.Spec.String(), "index", d.Index, "reason", d.Reason.String(), "size", totalSize)
	}
	return report
}

// Stats returns the cache hit and miss counts.
func (p *Parser) Stats() (hits int64, misses int64) {
	stats := p.cache.Stats()
	return stats.Hits(), stats.Misses()
}

// Close releases the cache. The Parser must not be used afterward.
func (p *Parser) Close() {
	p.cache.Close()
}

// tokenize returns cached specs; the returned slice is shared and must
// not be modified.
func (p *Parser) tokenize(header string) mo.Option[[]grammar.Spec] {
	if len(header) > p.maxCached {
		return grammar.Tokenize(header)
	}
	if tokens, ok := p.cache.Get(header); ok {
		return tokens
	}
	tokens := grammar.Tokenize(header)
	p.cache.Set(header, tokens)
	return tokens
}
