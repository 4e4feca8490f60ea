package tokenizer

import (
	"bytes"
	"fmt"
	"sort"
)

// Rank is the numeric identifier assigned to a token by the merge table.
type Rank = uint32

// TokenPair is one entry of a merge table: a byte string and the rank it
// was assigned when that string first became mergeable.
type TokenPair struct {
	Bytes []byte
	Rank  Rank
}

// MergeTable is the bijection between token byte strings and ranks that
// drives both the BPE merge algorithm and ordinary-token decoding. It is
// built once at encoder-construction time and never mutated afterward,
// which is what lets an EncoderState be shared freely across goroutines.
type MergeTable struct {
	encoder          map[string]Rank
	decoder          tokenStore
	sortedTokenBytes [][]byte
}

// newMergeTable validates and indexes a raw list of (bytes, rank) pairs,
// checking that every byte string is unique and every rank is unique.
// It does not check that every byte 0x00-0xFF has a single-byte entry;
// a well-formed table is assumed to provide one.
func newMergeTable(pairs []TokenPair) (*MergeTable, error) {
	encoder := make(map[string]Rank, len(pairs))
	seenRank := make(map[Rank]struct{}, len(pairs))
	rawPairs := make([][2]any, len(pairs))

	for idx, p := range pairs {
		key := string(p.Bytes)
		if _, dup := encoder[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTokenBytes, p.Bytes)
		}
		if _, dup := seenRank[p.Rank]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateRank, p.Rank)
		}
		encoder[key] = p.Rank
		seenRank[p.Rank] = struct{}{}
		rawPairs[idx] = [2]any{p.Bytes, p.Rank}
	}

	decoder, err := newTokenStore(rawPairs)
	if err != nil {
		return nil, err
	}

	sorted := make([][]byte, 0, len(pairs))
	for key := range encoder {
		sorted = append(sorted, []byte(key))
	}
	sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i], sorted[j]) < 0 })

	return &MergeTable{encoder: encoder, decoder: decoder, sortedTokenBytes: sorted}, nil
}

// Len returns the number of ordinary tokens in the table.
func (m *MergeTable) Len() int { return len(m.encoder) }

// RankOf returns the rank assigned to the given byte string, if any.
func (m *MergeTable) RankOf(b []byte) (Rank, bool) {
	r, ok := m.encoder[string(b)]
	return r, ok
}
