package tokenizer

import (
	"fmt"
	"unicode/utf8"
)

// DecodeBytes concatenates the bytes for each rank (spec §4.5's decode).
// Unknown ranks surface ErrUnknownRank; the rest of the stream is not
// decoded, per spec §7's "no partial successes" rule.
func (b *coreBPE) DecodeBytes(tokens []uint32) ([]byte, error) {
	var out []byte
	if err := b.DecodeBytesInto(&out, tokens); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeUTF8 decodes tokens and validates the result is UTF-8 (spec
// §4.5's decode_utf8). Because BPE merges operate on raw bytes, a
// validly encoded-then-decoded round trip is byte-identical to the
// input. It fails with ErrInvalidUTF8 for rank sequences that did not
// come from encoding a whole string, such as a sub-slice that cuts a
// multi-byte character, and with ErrUnknownRank for an unknown rank.
func (b *coreBPE) DecodeUTF8(tokens []uint32) (string, error) {
	bs, err := b.DecodeBytes(tokens)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bs) {
		return "", ErrInvalidUTF8
	}
	return string(bs), nil
}

// DecodeBytesInto appends the decoded bytes for tokens into dst,
// avoiding an intermediate slice allocation when dst already has
// capacity.
func (b *coreBPE) DecodeBytesInto(dst *[]byte, tokens []uint32) error {
	buf := *dst
	for _, t := range tokens {
		if b.merge.decoder.AppendInto(&buf, t) {
			continue
		}
		if v, ok := b.special.decoder[t]; ok {
			buf = append(buf, v...)
			continue
		}
		*dst = buf
		return fmt.Errorf("%w: %d", ErrUnknownRank, t)
	}
	*dst = buf
	return nil
}

// SplitByToken implements spec §4.6's split_by_token: encode text under
// allowedSpecial, then emit the lossy-UTF-8 decoding of each individual
// rank. Concatenating the result yields the lossy decode of the whole
// input, but not necessarily the original bytes when a multi-byte rune
// was split across two ranks — that is an intentional, observable
// property of operating rank-by-rank instead of on the full byte run.
func (b *coreBPE) SplitByToken(text string, allowedSpecial map[string]struct{}) ([]string, error) {
	tokens, _ := b.Encode(text, allowedSpecial)
	out := make([]string, 0, len(tokens))
	var scratch []byte
	for _, t := range tokens {
		scratch = scratch[:0]
		if err := b.DecodeBytesInto(&scratch, []uint32{t}); err != nil {
			return nil, err
		}
		out = append(out, lossyUTF8(scratch))
	}
	return out, nil
}

// lossyUTF8 decodes bs as UTF-8, substituting utf8.RuneError for any
// invalid byte so a single rank's partial multi-byte fragment still
// produces a displayable string instead of an error.
func lossyUTF8(bs []byte) string {
	if utf8.Valid(bs) {
		return string(bs)
	}
	buf := make([]rune, 0, len(bs))
	for i := 0; i < len(bs); {
		r, size := utf8.DecodeRune(bs[i:])
		buf = append(buf, r)
		i += size
	}
	return string(buf)
}
