package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// Segmenter yields non-overlapping, left-to-right byte spans of s.
// Next returns the end offset (exclusive) of the span starting at byte
// offset i; callers advance i to that offset and call again until i
// reaches len(s). Two contract-equivalent implementations exist in this
// package: Pattern (pattern.go), which evaluates a compiled regexp2
// pattern and backs every shipped encoding, and o200kSegmenter below,
// which reproduces the o200k_base pattern's rule priority by hand
// without backtracking, as an optional lower-overhead alternative for
// that one encoding.
type Segmenter interface{ Next(s string, i int) int }

// o200kSegmenter implements the o200k_base pre-tokenization rules
// (§6.2's seven-way alternation) as a direct rule-priority scan instead
// of a backtracking regex match. It produces the same spans as
// Pattern compiled against PatternO200k.
type o200kSegmenter struct{}

// NewO200kSegmenter returns the hand-written o200k_base segmenter.
func NewO200kSegmenter() Segmenter { return &o200kSegmenter{} }

func (o *o200kSegmenter) Next(s string, i int) int {
	// NOTE: This is a minimal, correct-but-not-yet-optimized segmentation.
	// It follows the priority order and guarantees progress.
	if i >= len(s) {
		return i
	}

	// Rule 6: trailing whitespace — if remainder is all whitespace, consume it all.
	allWS := true
	for j := i; j < len(s); {
		b := s[j]
		if b < utf8.RuneSelf {
			if !isASCIISpace(b) {
				allWS = false
				break
			}
			j++
			continue
		}
		r, size := utf8DecodeRuneInString(s[j:])
		if !isSpace(r) {
			allWS = false
			break
		}
		j += size
	}
	if allWS {
		return len(s)
	}

	// Try rules in priority: 1,2,3,4,5,7
	if end := ruleLettersWithPrefixAndContraction(s, i); end > i {
		return end
	}
	if end := ruleLettersWithContraction(s, i); end > i {
		return end
	}
	if end := ruleNumbers(s, i); end > i {
		return end
	}
	if end := rulePunctRun(s, i); end > i {
		return end
	}
	if end := ruleNewlines(s, i); end > i {
		return end
	}
	if end := ruleWhitespace(s, i); end > i {
		return end
	}
	// Fallback: single byte
	return i + 1
}

// Helpers
func utf8DecodeRuneInString(s string) (r rune, size int) { return utf8.DecodeRuneInString(s) }

func isL(r rune) bool     { return unicode.Is(unicode.L, r) || unicode.Is(unicode.M, r) }
func isN(r rune) bool     { return unicode.Is(unicode.N, r) }
func isSpace(r rune) bool { return unicode.IsSpace(r) }

// isUpperClass and isLowerClass mirror the two character classes used by
// both letter alternatives of the o200k pattern. Lm, Lo, and M sit in
// both classes — scripts without case distinction never force a split.
func isUpperClass(r rune) bool {
	return unicode.Is(unicode.Lu, r) || unicode.Is(unicode.Lt, r) ||
		unicode.Is(unicode.Lm, r) || unicode.Is(unicode.Lo, r) || unicode.Is(unicode.M, r)
}

func isLowerClass(r rune) bool {
	return unicode.Is(unicode.Ll, r) ||
		unicode.Is(unicode.Lm, r) || unicode.Is(unicode.Lo, r) || unicode.Is(unicode.M, r)
}

// Rule 1 & 2 variants
func ruleLettersWithPrefixAndContraction(s string, i int) int {
	// optional single prefix: anything but \r, \n, a letter, or a number —
	// this explicitly includes plain whitespace, matching [^\r\n\p{L}\p{N}]?.
	j := i
	r, sz := rune(s[j]), 1
	if r >= 0x80 {
		r, sz = utf8DecodeRuneInString(s[j:])
	}
	if isL(r) || isN(r) || r == '\r' || r == '\n' {
		return ruleLettersWithContraction(s, i)
	}
	j += sz
	if end := consumeLetterRun(s, j); end > j {
		j = end
		// optional contraction
		if end2 := matchContraction(s, j); end2 > j {
			j = end2
		}
		return j
	}
	return i
}

func ruleLettersWithContraction(s string, i int) int {
	j := i
	if end := consumeLetterRun(s, j); end > j {
		j = end
		if end2 := matchContraction(s, j); end2 > j {
			j = end2
		}
		return j
	}
	return i
}

// consumeLetterRun matches the pattern's two cased-letter alternatives
// together: an optional run of upper/title-case letters followed by a
// required run of lowercase letters (rule 1), falling back to a
// required upper-case run with an optional lowercase tail when no
// lowercase run follows anywhere in the upper-case span (rule 2). This
// is what lets "mixedCASE" split into "mixed"+"CASE" instead of
// matching as one run: greedily consuming every letter regardless of
// case would miss the boundary the pattern's case classes impose.
func consumeLetterRun(s string, i int) int {
	var upperEnds []int
	j := i
	for j < len(s) {
		b := s[j]
		var r rune
		var sz int
		if b < utf8.RuneSelf {
			r, sz = rune(b), 1
		} else {
			r, sz = utf8DecodeRuneInString(s[j:])
		}
		if !isUpperClass(r) {
			break
		}
		upperEnds = append(upperEnds, j)
		j += sz
	}
	upperEnds = append(upperEnds, j)
	for k := len(upperEnds) - 1; k >= 0; k-- {
		boundary := upperEnds[k]
		if boundary >= len(s) {
			continue
		}
		b := s[boundary]
		var r rune
		if b < utf8.RuneSelf {
			r = rune(b)
		} else {
			r, _ = utf8DecodeRuneInString(s[boundary:])
		}
		if !isLowerClass(r) {
			continue
		}
		end := boundary
		for end < len(s) {
			b := s[end]
			var r rune
			var sz int
			if b < utf8.RuneSelf {
				r, sz = rune(b), 1
			} else {
				r, sz = utf8DecodeRuneInString(s[end:])
			}
			if !isLowerClass(r) {
				break
			}
			end += sz
		}
		return end
	}
	return j
}

func matchContraction(s string, i int) int {
	if i >= len(s) || s[i] != '\'' {
		return i
	}
	// ASCII-only, case-insensitive suffixes
	for _, suf := range []string{"s", "t", "re", "ve", "m", "ll", "d"} {
		if hasCaseInsensitiveSuffixAt(s, i+1, suf) {
			return i + 1 + len(suf)
		}
	}
	return i
}

func hasCaseInsensitiveSuffixAt(s string, i int, suf string) bool {
	if i+len(suf) > len(s) {
		return false
	}
	for k := 0; k < len(suf); k++ {
		a := s[i+k]
		b := suf[k]
		if a|0x20 != b|0x20 {
			return false
		}
	}
	return true
}

func ruleNumbers(s string, i int) int {
	j := i
	count := 0
	for j < len(s) {
		b := s[j]
		if b < utf8.RuneSelf {
			if !isASCIIDigit(b) || count >= 3 {
				break
			}
			j++
			count++
			continue
		}
		r, sz := utf8DecodeRuneInString(s[j:])
		if !isN(r) || count >= 3 {
			break
		}
		j += sz
		count++
	}
	if count > 0 {
		return j
	}
	return i
}

func rulePunctRun(s string, i int) int {
	j := i
	// optional leading space
	if j < len(s) {
		b := s[j]
		if b < utf8.RuneSelf {
			if isASCIISpace(b) {
				j++
			}
		} else {
			r, sz := utf8DecodeRuneInString(s[j:])
			if isSpace(r) {
				j += sz
			}
		}
	}
	had := false
	for j < len(s) {
		b := s[j]
		if b < utf8.RuneSelf {
			if isASCIISpace(b) || isASCIILetter(b) || isASCIIDigit(b) {
				break
			}
			j++
			had = true
			continue
		}
		r, sz := utf8DecodeRuneInString(s[j:])
		if isSpace(r) || isL(r) || isN(r) {
			break
		}
		j += sz
		had = true
	}
	if !had {
		return i
	}
	// optional CR/LF or '/'
	if j < len(s) {
		b := s[j]
		if b < utf8.RuneSelf {
			if b == '\r' || b == '\n' || b == '/' {
				j++
			}
		} else {
			r, sz := utf8DecodeRuneInString(s[j:])
			if r == '\r' || r == '\n' || r == '/' {
				j += sz
			}
		}
	}
	return j
}

func ruleNewlines(s string, i int) int {
	j := i
	// spaces
	for j < len(s) {
		b := s[j]
		if b < utf8.RuneSelf {
			if !isASCIISpace(b) || b == '\r' || b == '\n' {
				break
			}
			j++
			continue
		}
		r, sz := utf8DecodeRuneInString(s[j:])
		if !isSpace(r) || r == '\r' || r == '\n' {
			break
		}
		j += sz
	}
	// one or more CR/LF
	have := false
	for j < len(s) {
		b := s[j]
		if b < utf8.RuneSelf {
			if b != '\r' && b != '\n' {
				break
			}
			j++
			have = true
			continue
		}
		r, sz := utf8DecodeRuneInString(s[j:])
		if r != '\r' && r != '\n' {
			break
		}
		j += sz
		have = true
	}
	if !have {
		return i
	}
	// consume additional CR/LF
	for j < len(s) {
		b := s[j]
		if b < utf8.RuneSelf {
			if b != '\r' && b != '\n' {
				break
			}
			j++
			continue
		}
		r, sz := utf8DecodeRuneInString(s[j:])
		if r != '\r' && r != '\n' {
			break
		}
		j += sz
	}
	return j
}

// ruleWhitespace implements \s+(?!\S): it consumes the maximal run of
// whitespace starting at i, but when that run is followed by a
// non-whitespace byte, it leaves the run's last character unconsumed
// so the next call's letter-prefix rule can claim it instead. A
// single-character run has nothing to give back, so it is returned
// whole — this mirrors the regex backtracking into the plain \s+
// alternative once \s+(?!\S) fails for that length.
func ruleWhitespace(s string, i int) int {
	j := i
	lastStart := i
	for j < len(s) {
		b := s[j]
		if b < utf8.RuneSelf {
			if !isASCIISpace(b) {
				break
			}
			lastStart = j
			j++
			continue
		}
		r, sz := utf8DecodeRuneInString(s[j:])
		if !isSpace(r) {
			break
		}
		lastStart = j
		j += sz
	}
	if j == i {
		return i
	}
	if j == len(s) || lastStart == i {
		return j
	}
	return lastStart
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
