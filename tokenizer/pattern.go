package tokenizer

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// The pre-tokenization patterns are normative and must be used verbatim;
// changing a single character changes tokenization output for every
// encoding built on top of it.
const (
	// PatternR50k is the pre-tokenization pattern shared by r50k_base
	// and p50k_base/p50k_edit.
	PatternR50k = `'s|'t|'re|'ve|'m|'ll|'d| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`
	// PatternCl100k is the pre-tokenization pattern for cl100k_base and,
	// unchanged, for the Llama-3 encoding built on top of it.
	PatternCl100k = `(?i:'s|'t|'re|'ve|'m|'ll|'d)|[^\r\n\p{L}\p{N}]?\p{L}+|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n]*|\s*[\r\n]+|\s+(?!\S)|\s+`
	// PatternO200k is the pre-tokenization pattern for o200k_base.
	PatternO200k = `[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]*[\p{Ll}\p{Lm}\p{Lo}\p{M}]+(?i:'s|'t|'re|'ve|'m|'ll|'d)?` +
		`|[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]+[\p{Ll}\p{Lm}\p{Lo}\p{M}]*(?i:'s|'t|'re|'ve|'m|'ll|'d)?` +
		`|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n/]*|\s*[\r\n]+|\s+(?!\S)|\s+`
)

// Pattern is a Segmenter backed by a compiled regexp2 pattern, the
// default PreTokenizer for every shipped encoding. regexp2 is used
// instead of the standard library's regexp because the patterns above
// require negative lookahead and case-insensitive groups, neither of
// which RE2-derived engines support.
type Pattern struct {
	expr string
	re   *regexp2.Regexp
}

// compilePattern compiles expr, returning ErrInvalidPattern on failure.
func compilePattern(expr string) (*Pattern, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

// Next implements Segmenter: it matches re against the remainder of s
// starting at byte offset i and returns the end offset of that match.
// Per spec every shipped pattern ends in a \s+ catch-all, so a match at
// i always exists while i < len(s); the one-byte fallback below only
// guards a pathologically constructed custom pattern that fails to
// cover some input byte.
func (p *Pattern) Next(s string, i int) int {
	if i >= len(s) {
		return i
	}
	m, err := p.re.FindStringMatch(s[i:])
	if err != nil || m == nil || m.Index != 0 {
		return i + 1
	}
	matched := m.String()
	if len(matched) == 0 {
		return i + 1
	}
	return i + len(matched)
}

// clone compiles an independent copy of the pattern for a
// ThreadLocalRegex replica slot. regexp2.Regexp mutates internal match
// state during FindStringMatch, so replicas used from different
// goroutines must not share a *regexp2.Regexp; recompiling from the
// source expression (cheap relative to one-time EncoderState
// construction) sidesteps that without needing an explicit clone
// primitive from the library.
func (p *Pattern) clone() *Pattern {
	cloned, err := compilePattern(p.expr)
	if err != nil {
		// p.expr already compiled once successfully; a second compile
		// of the same string cannot fail.
		panic(err)
	}
	return cloned
}
