package byterange

import "log/slog"

// Options Configuration options for a Parser.
type Options struct {
	// CacheSize is the number of tokenized headers kept in memory.
	CacheSize int
	// MaxCachedHeader is the longest header, in bytes, that is cached.
	// Longer headers are tokenized on every call.
	MaxCachedHeader int
	// Log receives a debug record for every dropped spec.
	Log *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		CacheSize:       1000,
		MaxCachedHeader: 256,
		Log:             slog.Default(),
	}
}
