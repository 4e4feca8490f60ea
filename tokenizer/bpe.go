package tokenizer

import "sync"

// coreBPE is the immutable EncoderState: a MergeTable, a SpecialTokenSet,
// a PreTokenizer (Segmenter), and the regex replica pool that lets
// Encode be called concurrently without two goroutines sharing a
// mutable regexp2 match state. Once built it is never mutated; every
// method is safe to call from many goroutines at once.
type coreBPE struct {
	merge   *MergeTable
	special *SpecialTokenSet
	seg     Segmenter // nil means "use the replica's compiled Pattern"
	tlRegex *ThreadLocalRegex

	partsPool sync.Pool
	tokenPool sync.Pool
}

// buildCoreBPE assembles an EncoderState from a raw merge table, a
// special-token map, and a pre-tokenization pattern, validating the
// invariants spec §4.1 requires. seg, if non-nil, overrides the default
// regexp2-backed Pattern as the ordinary-span pre-tokenizer (for
// example NewO200kSegmenter); the special-token alternation is always
// regexp2-based regardless of seg.
func buildCoreBPE(pairs []TokenPair, specials map[string]Rank, pattern string, seg Segmenter, replicaCount int) (*coreBPE, error) {
	merge, err := newMergeTable(pairs)
	if err != nil {
		return nil, err
	}
	special, err := newSpecialTokenSet(specials, merge)
	if err != nil {
		return nil, err
	}
	pat, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &coreBPE{
		merge:     merge,
		special:   special,
		seg:       seg,
		tlRegex:   newThreadLocalRegex(pat, special, replicaCount),
		partsPool: sync.Pool{New: func() any { b := make([]part, 0, 64); return &b }},
		tokenPool: sync.Pool{New: func() any { b := make([]uint32, 0, 32); return &b }},
	}, nil
}

func (b *coreBPE) segmenterFor(replica *regexReplica) Segmenter {
	if b.seg != nil {
		return b.seg
	}
	return replica.pattern
}

func (b *coreBPE) IsSpecialToken(id uint32) bool { _, ok := b.special.decoder[id]; return ok }

// SpecialTokens returns the literal form of every special token this
// encoder state was built with, suitable for use as an allow-set.
func (b *coreBPE) SpecialTokens() map[string]struct{} {
	out := make(map[string]struct{}, len(b.special.encoder))
	for lit := range b.special.encoder {
		out[lit] = struct{}{}
	}
	return out
}

// EncodeWithSpecialTokens encodes text, allowing every configured
// special token to be recognized (spec §4.4's encode_with_special_tokens).
func (b *coreBPE) EncodeWithSpecialTokens(text string) []uint32 {
	toks, _ := b.Encode(text, b.SpecialTokens())
	return toks
}

// EncodeOrdinary recognizes no special tokens (spec §4.4's encode_ordinary):
// it runs the pre-tokenizer over the whole input and BPE-merges each span.
func (b *coreBPE) EncodeOrdinary(text string) []uint32 {
	replica, release := b.tlRegex.acquire()
	defer release()
	seg := b.segmenterFor(replica)

	var out []uint32
	i := 0
	for i < len(text) {
		start := i
		end := seg.Next(text, i)
		if end <= start {
			end = start + 1
		}
		piece := text[start:end]
		if id, ok := b.merge.encoder[piece]; ok {
			out = append(out, id)
		} else {
			toks, release := b.bytePairEncode(piece)
			out = append(out, toks...)
			release()
		}
		i = end
	}
	return out
}

// Encode is the special-token-aware operation (spec §4.4's encode):
// it scans left-to-right, alternating ordinary pre-tokenized-and-merged
// segments with exact special-token matches restricted to allowedSpecial.
// A special-token candidate that is not in allowedSpecial is skipped
// over rather than stopping the scan, which is what lets it fall
// through to ordinary BPE encoding instead of being recognized — the
// silent-ordinary-encoding policy spec §9's open question resolves to.
//
// Matching is done over runes rather than bytes for the special-token
// scan because the underlying regexp2 match offsets are rune-indexed;
// the ordinary pre-tokenizer, by contrast, is always handed a plain Go
// string and therefore still works in byte offsets internally.
func (b *coreBPE) Encode(text string, allowedSpecial map[string]struct{}) ([]uint32, int) {
	var out []uint32
	lastPieceLen := 0
	if len(allowedSpecial) == 0 {
		return b.EncodeOrdinary(text), 0
	}

	replica, release := b.tlRegex.acquire()
	defer release()
	seg := b.segmenterFor(replica)

	runes := []rune(text)
	start := 0
	for {
		var specialLit string
		var specialRuneStart, specialRuneEnd int
		found := false

		searchFrom := start
		for {
			sub := cutRunes(runes, searchFrom, len(runes))
			m, _ := replica.specials.regex.FindStringMatch(sub)
			if m == nil {
				break
			}
			lit := m.String()
			matchStart := searchFrom + m.Index
			matchEnd := matchStart + m.Length
			if _, ok := allowedSpecial[lit]; ok {
				specialLit, specialRuneStart, specialRuneEnd, found = lit, matchStart, matchEnd, true
				break
			}
			searchFrom = matchEnd
			if searchFrom >= len(runes) {
				break
			}
		}

		ordinaryEnd := len(runes)
		if found {
			ordinaryEnd = specialRuneStart
		}
		ordinary := cutRunes(runes, start, ordinaryEnd)

		i := 0
		for i < len(ordinary) {
			spanStart := i
			spanEnd := seg.Next(ordinary, i)
			if spanEnd <= spanStart {
				spanEnd = spanStart + 1
			}
			piece := ordinary[spanStart:spanEnd]
			if id, ok := b.merge.encoder[piece]; ok {
				out = append(out, id)
				lastPieceLen = 1
			} else {
				toks, release := b.bytePairEncode(piece)
				out = append(out, toks...)
				lastPieceLen = len(toks)
				release()
			}
			i = spanEnd
		}

		if !found {
			break
		}
		out = append(out, b.special.encoder[specialLit])
		lastPieceLen = 0
		start = specialRuneEnd
		if start >= len(runes) {
			break
		}
	}
	return out, lastPieceLen
}

func cutRunes(runes []rune, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// bytePairEncode is the fast-path-plus-merge entry point for one
// pre-token: a single-byte-table hit returns immediately, otherwise the
// full minimum-rank merge runs.
func (b *coreBPE) bytePairEncode(piece string) ([]uint32, func()) {
	if len(piece) == 1 {
		buf, release := b.acquireTokens(1)
		buf = append(buf[:0], b.merge.encoder[piece])
		return buf, release
	}
	parts, releaseParts := b.bytePairMerge(piece)
	toks, releaseTokens := b.acquireTokens(len(parts))
	toks = toks[:0]
	for w := 0; w+1 < len(parts); w++ {
		toks = append(toks, b.merge.encoder[piece[parts[w].start:parts[w+1].start]])
	}
	release := func() {
		releaseParts()
		releaseTokens()
	}
	return toks, release
}

// part is one element of the working array bytePairMerge mutates: a
// starting byte offset into piece, plus the rank of the pair
// (part[i], part[i+1]) that would result from merging at i.
type part struct {
	start int
	rank  uint32
}

// noMerge is the sentinel rank meaning "this pair is not in the merge
// table and can never be merged."
const noMerge = ^uint32(0)

func (b *coreBPE) getRank(piece string, parts []part, i int) uint32 {
	if i+3 < len(parts) {
		if r, ok := b.merge.encoder[piece[parts[i].start:parts[i+3].start]]; ok {
			return r
		}
	}
	return noMerge
}

// bytePairMerge implements the greedy minimum-rank merge algorithm: at
// each step, find the leftmost pair with the smallest rank and fuse it,
// until no mergeable pair remains. The leftmost tie-break is load-bearing
// for determinism (two different tie-breaks produce different token
// streams for the same input).
func (b *coreBPE) bytePairMerge(piece string) ([]part, func()) {
	parts, release := b.acquireParts(len(piece) + 2)
	parts = parts[:0]

	type minEntry struct {
		rank uint32
		idx  int
	}
	minRank := minEntry{rank: noMerge, idx: -1}

	for i := 0; i < len(piece)-1; i++ {
		r, ok := b.merge.encoder[piece[i:i+2]]
		if !ok {
			r = noMerge
		}
		if r < minRank.rank {
			minRank = minEntry{r, i}
		}
		parts = append(parts, part{start: i, rank: r})
	}
	parts = append(parts, part{start: len(piece) - 1, rank: noMerge})
	parts = append(parts, part{start: len(piece), rank: noMerge})

	for minRank.rank != noMerge {
		i := minRank.idx
		if i > 0 {
			parts[i-1].rank = b.getRank(piece, parts, i-1)
		}
		parts[i].rank = b.getRank(piece, parts, i)
		parts = append(parts[:i+1], parts[i+2:]...)

		minRank = minEntry{rank: noMerge, idx: -1}
		for j := 0; j < len(parts)-1; j++ {
			if parts[j].rank < minRank.rank {
				minRank = minEntry{parts[j].rank, j}
			}
		}
	}
	return parts, release
}

func (b *coreBPE) acquireParts(capHint int) ([]part, func()) {
	var p *[]part
	if v := b.partsPool.Get(); v != nil {
		p = v.(*[]part)
		if cap(*p) < capHint {
			buf := make([]part, 0, capHint)
			p = &buf
		} else {
			*p = (*p)[:0]
		}
	} else {
		buf := make([]part, 0, capHint)
		p = &buf
	}
	release := func() {
		if cap(*p) > 1<<12 {
			return
		}
		*p = (*p)[:0]
		b.partsPool.Put(p)
	}
	return *p, release
}

func (b *coreBPE) acquireTokens(capHint int) ([]uint32, func()) {
	var p *[]uint32
	if v := b.tokenPool.Get(); v != nil {
		p = v.(*[]uint32)
		if cap(*p) < capHint {
			buf := make([]uint32, 0, capHint)
			p = &buf
		} else {
			*p = (*p)[:0]
		}
	} else {
		buf := make([]uint32, 0, capHint)
		p = &buf
	}
	release := func() {
		if cap(*p) > 1<<12 {
			return
		}
		*p = (*p)[:0]
		b.tokenPool.Put(p)
	}
	return *p, release
}
