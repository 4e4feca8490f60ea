package tokenizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Special token literals shared across the OpenAI encodings (spec §6.3).
const (
	litEndOfText   = "<|endoftext|>"
	litFimPrefix   = "<|fim_prefix|>"
	litFimMiddle   = "<|fim_middle|>"
	litFimSuffix   = "<|fim_suffix|>"
	litEndOfPrompt = "<|endofprompt|>"
)

// Llama-3 special token literals (original_source/tiktoken-rs/src/tiktoken_ext/llama3.rs).
const (
	litBeginOfText         = "<|begin_of_text|>"
	litEndOfTextLlama      = "<|end_of_text|>"
	litReservedSpecial0    = "<|reserved_special_token_0|>"
	litReservedSpecial1    = "<|reserved_special_token_1|>"
	litReservedSpecial2    = "<|reserved_special_token_2|>"
	litReservedSpecial3    = "<|reserved_special_token_3|>"
	litStartHeaderID       = "<|start_header_id|>"
	litEndHeaderID         = "<|end_header_id|>"
	litReservedSpecial4    = "<|reserved_special_token_4|>"
	litEotID               = "<|eot_id|>"
	llama3NumReservedTotal = 256
	llama3FirstReservedIdx = 5
)

// SpecialTokenSet is the immutable bijection {literal string ↔ rank} for
// an encoding's special tokens, plus the compiled alternation regex used
// to find the next special-token candidate during Encoder.Encode.
type SpecialTokenSet struct {
	encoder map[string]Rank
	decoder map[Rank][]byte
	regex   *regexp2.Regexp
	expr    string
}

// newSpecialTokenSet validates specials against mergeTable (SpecialOverlap,
// spec §4.1/§7) and compiles the alternation regex used to scan for
// special-token candidates.
func newSpecialTokenSet(specials map[string]Rank, mergeTable *MergeTable) (*SpecialTokenSet, error) {
	encoder := make(map[string]Rank, len(specials))
	decoder := make(map[Rank][]byte, len(specials))
	literals := make([]string, 0, len(specials))
	for lit, rank := range specials {
		if _, overlap := mergeTable.encoder[lit]; overlap {
			return nil, fmt.Errorf("%w: %q", ErrSpecialOverlap, lit)
		}
		encoder[lit] = rank
		decoder[rank] = []byte(lit)
		literals = append(literals, regexp.QuoteMeta(lit))
	}

	// An empty alternation would match the empty string at every
	// position; match-nothing is expressed instead as a pattern that can
	// never match any input.
	expr := `(?!)`
	if len(literals) > 0 {
		expr = strings.Join(literals, "|")
	}
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: special token alternation: %v", ErrInvalidPattern, err)
	}

	return &SpecialTokenSet{encoder: encoder, decoder: decoder, regex: re, expr: expr}, nil
}

func (s *SpecialTokenSet) clone() *SpecialTokenSet {
	re, err := regexp2.Compile(s.expr, regexp2.None)
	if err != nil {
		panic(err)
	}
	return &SpecialTokenSet{encoder: s.encoder, decoder: s.decoder, regex: re, expr: s.expr}
}

// R50kSpecials returns the special tokens shared by r50k_base and
// p50k_base (spec §6.3).
func R50kSpecials() map[string]Rank {
	return map[string]Rank{litEndOfText: 50256}
}

// P50kEditSpecials adds the fill-in-the-middle markers used by the
// editing variant of the p50k encoding.
func P50kEditSpecials() map[string]Rank {
	return map[string]Rank{
		litEndOfText: 50256,
		litFimPrefix: 50281,
		litFimMiddle: 50282,
		litFimSuffix: 50283,
	}
}

// Cl100kSpecials returns cl100k_base's five special tokens.
func Cl100kSpecials() map[string]Rank {
	return map[string]Rank{
		litEndOfText:   100257,
		litFimPrefix:   100258,
		litFimMiddle:   100259,
		litFimSuffix:   100260,
		litEndOfPrompt: 100276,
	}
}

// O200kSpecials returns o200k_base's two special tokens.
func O200kSpecials() map[string]Rank {
	return map[string]Rank{
		litEndOfText:   199999,
		litEndOfPrompt: 200018,
	}
}

// Llama3Specials builds the Llama-3 special token set: ten named
// markers followed by 246 numbered reserved slots (indices 5 through
// 250), 256 specials in total, with ranks assigned sequentially
// starting at numBase (the size of the ordinary merge table), exactly
// as original_source/tiktoken-rs/src/tiktoken_ext/llama3.rs assigns
// them — NOT as fixed absolute offsets, which is how the teacher's own
// Harmony-specific reserved range was encoded and does not generalize
// across vocab sizes.
func Llama3Specials(numBase int) map[string]Rank {
	named := []string{
		litBeginOfText,
		litEndOfTextLlama,
		litReservedSpecial0,
		litReservedSpecial1,
		litReservedSpecial2,
		litReservedSpecial3,
		litStartHeaderID,
		litEndHeaderID,
		litReservedSpecial4,
		litEotID,
	}
	numReserved := llama3NumReservedTotal - 2*llama3FirstReservedIdx
	out := make(map[string]Rank, len(named)+numReserved)
	rank := Rank(numBase)
	for _, lit := range named {
		out[lit] = rank
		rank++
	}
	for i := llama3FirstReservedIdx; i < llama3NumReservedTotal-llama3FirstReservedIdx; i++ {
		lit := fmt.Sprintf("<|reserved_special_token_%d|>", i)
		out[lit] = rank
		rank++
	}
	return out
}
