// Package tokenizer implements the rank-based BPE merge algorithm, the
// special-token-aware scanner, and the immutable encoder state that
// together make up a tiktoken-compatible byte-pair encoder.
package tokenizer

// Core is the exported name for the immutable, concurrency-safe
// encoder state (spec §3's EncoderState). Build it once per encoding
// and share it freely; every method is safe to call from many
// goroutines at once.
type Core = coreBPE

// Options configures an optional Segmenter override and replica count
// for Build. The zero value uses the default regexp2-backed Pattern
// for pre-tokenization and defaultReplicaCount thread-local replicas.
type Options struct {
	// Segmenter, if non-nil, replaces the default regexp2 Pattern as
	// the ordinary-span pre-tokenizer. The special-token alternation is
	// always regexp2-based regardless of this setting.
	Segmenter Segmenter
	// ReplicaCount overrides the bounded thread-local regex replica
	// count; <= 0 means defaultReplicaCount.
	ReplicaCount int
}

// Build constructs an EncoderState (spec §4.1, §6.4's build(encoder,
// specials, pattern)) from a raw merge table, a special-token map, and
// a pre-tokenization pattern string. It validates every invariant spec
// §4.1 lists and returns the corresponding error kind on failure:
// ErrInvalidPattern, ErrDuplicateRank, ErrDuplicateTokenBytes, or
// ErrSpecialOverlap.
func Build(pairs []TokenPair, specials map[string]Rank, pattern string, opts Options) (*Core, error) {
	return buildCoreBPE(pairs, specials, pattern, opts.Segmenter, opts.ReplicaCount)
}
